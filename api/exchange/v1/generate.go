// Package exchangev1 holds the protobuf messages and gRPC stubs of the chat API.
package exchangev1

//go:generate protoc --proto_path=../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative exchange/v1/exchange.proto
