// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: banner.proto

package bannerpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	BannerAnalysis_RecordBatch_FullMethodName     = "/bannerpb.BannerAnalysis/RecordBatch"
	BannerAnalysis_RunAnalysis_FullMethodName     = "/bannerpb.BannerAnalysis/RunAnalysis"
	BannerAnalysis_GetSummary_FullMethodName      = "/bannerpb.BannerAnalysis/GetSummary"
	BannerAnalysis_ListExperiments_FullMethodName = "/bannerpb.BannerAnalysis/ListExperiments"
)

// BannerAnalysisClient is the client API for BannerAnalysis service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// BannerAnalysis records banner observations and serves posterior analyses.
type BannerAnalysisClient interface {
	RecordBatch(ctx context.Context, in *RecordBatchRequest, opts ...grpc.CallOption) (*RecordBatchReply, error)
	RunAnalysis(ctx context.Context, in *RunAnalysisRequest, opts ...grpc.CallOption) (*AnalysisReply, error)
	GetSummary(ctx context.Context, in *GetSummaryRequest, opts ...grpc.CallOption) (*AnalysisReply, error)
	ListExperiments(ctx context.Context, in *ListExperimentsRequest, opts ...grpc.CallOption) (*ListExperimentsReply, error)
}

type bannerAnalysisClient struct {
	cc grpc.ClientConnInterface
}

func NewBannerAnalysisClient(cc grpc.ClientConnInterface) BannerAnalysisClient {
	return &bannerAnalysisClient{cc}
}

func (c *bannerAnalysisClient) RecordBatch(ctx context.Context, in *RecordBatchRequest, opts ...grpc.CallOption) (*RecordBatchReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecordBatchReply)
	err := c.cc.Invoke(ctx, BannerAnalysis_RecordBatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bannerAnalysisClient) RunAnalysis(ctx context.Context, in *RunAnalysisRequest, opts ...grpc.CallOption) (*AnalysisReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AnalysisReply)
	err := c.cc.Invoke(ctx, BannerAnalysis_RunAnalysis_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bannerAnalysisClient) GetSummary(ctx context.Context, in *GetSummaryRequest, opts ...grpc.CallOption) (*AnalysisReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AnalysisReply)
	err := c.cc.Invoke(ctx, BannerAnalysis_GetSummary_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bannerAnalysisClient) ListExperiments(ctx context.Context, in *ListExperimentsRequest, opts ...grpc.CallOption) (*ListExperimentsReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListExperimentsReply)
	err := c.cc.Invoke(ctx, BannerAnalysis_ListExperiments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BannerAnalysisServer is the server API for BannerAnalysis service.
// All implementations must embed UnimplementedBannerAnalysisServer
// for forward compatibility.
//
// BannerAnalysis records banner observations and serves posterior analyses.
type BannerAnalysisServer interface {
	RecordBatch(context.Context, *RecordBatchRequest) (*RecordBatchReply, error)
	RunAnalysis(context.Context, *RunAnalysisRequest) (*AnalysisReply, error)
	GetSummary(context.Context, *GetSummaryRequest) (*AnalysisReply, error)
	ListExperiments(context.Context, *ListExperimentsRequest) (*ListExperimentsReply, error)
	mustEmbedUnimplementedBannerAnalysisServer()
}

// UnimplementedBannerAnalysisServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBannerAnalysisServer struct{}

func (UnimplementedBannerAnalysisServer) RecordBatch(context.Context, *RecordBatchRequest) (*RecordBatchReply, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordBatch not implemented")
}
func (UnimplementedBannerAnalysisServer) RunAnalysis(context.Context, *RunAnalysisRequest) (*AnalysisReply, error) {
	return nil, status.Error(codes.Unimplemented, "method RunAnalysis not implemented")
}
func (UnimplementedBannerAnalysisServer) GetSummary(context.Context, *GetSummaryRequest) (*AnalysisReply, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSummary not implemented")
}
func (UnimplementedBannerAnalysisServer) ListExperiments(context.Context, *ListExperimentsRequest) (*ListExperimentsReply, error) {
	return nil, status.Error(codes.Unimplemented, "method ListExperiments not implemented")
}
func (UnimplementedBannerAnalysisServer) mustEmbedUnimplementedBannerAnalysisServer() {}
func (UnimplementedBannerAnalysisServer) testEmbeddedByValue()                        {}

// UnsafeBannerAnalysisServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BannerAnalysisServer will
// result in compilation errors.
type UnsafeBannerAnalysisServer interface {
	mustEmbedUnimplementedBannerAnalysisServer()
}

func RegisterBannerAnalysisServer(s grpc.ServiceRegistrar, srv BannerAnalysisServer) {
	// If the following call panics, it indicates UnimplementedBannerAnalysisServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BannerAnalysis_ServiceDesc, srv)
}

func _BannerAnalysis_RecordBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BannerAnalysisServer).RecordBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BannerAnalysis_RecordBatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BannerAnalysisServer).RecordBatch(ctx, req.(*RecordBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BannerAnalysis_RunAnalysis_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunAnalysisRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BannerAnalysisServer).RunAnalysis(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BannerAnalysis_RunAnalysis_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BannerAnalysisServer).RunAnalysis(ctx, req.(*RunAnalysisRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BannerAnalysis_GetSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BannerAnalysisServer).GetSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BannerAnalysis_GetSummary_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BannerAnalysisServer).GetSummary(ctx, req.(*GetSummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BannerAnalysis_ListExperiments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListExperimentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BannerAnalysisServer).ListExperiments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BannerAnalysis_ListExperiments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BannerAnalysisServer).ListExperiments(ctx, req.(*ListExperimentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BannerAnalysis_ServiceDesc is the grpc.ServiceDesc for BannerAnalysis service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BannerAnalysis_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "bannerpb.BannerAnalysis",
	HandlerType: (*BannerAnalysisServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RecordBatch",
			Handler:    _BannerAnalysis_RecordBatch_Handler,
		},
		{
			MethodName: "RunAnalysis",
			Handler:    _BannerAnalysis_RunAnalysis_Handler,
		},
		{
			MethodName: "GetSummary",
			Handler:    _BannerAnalysis_GetSummary_Handler,
		},
		{
			MethodName: "ListExperiments",
			Handler:    _BannerAnalysis_ListExperiments_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "banner.proto",
}
