package common

// AccessTokenHeaderName is the gRPC/HTTP metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DayLayout is the layout of calendar-day keys (UTC) used for daily usage.
const DayLayout = "2006-01-02"
