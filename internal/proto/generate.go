// Package proto holds the ProofService wire contract generated from
// astroproof.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative astroproof.proto
