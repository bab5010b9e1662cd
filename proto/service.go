package proto

import (
	"context"

	"google.golang.org/grpc"
)

const (
	methodGetWriterId    = "/seriesdb.SeriesDBMaster/GetWriterId"
	methodUpdateWriterId = "/seriesdb.SeriesDBMaster/UpdateWriterId"
	methodListDatabases  = "/seriesdb.SeriesDBMaster/ListDatabases"
	methodGetDatabase    = "/seriesdb.SeriesDBMaster/GetDatabase"
	methodCreateDatabase = "/seriesdb.SeriesDBMaster/CreateDatabase"
)

type SeriesDBMasterClient interface {
	GetWriterId(ctx context.Context, in *GetWriterIdRequest, opts ...grpc.CallOption) (*GetWriterIdResponse, error)
	UpdateWriterId(ctx context.Context, in *UpdateWriterIdRequest, opts ...grpc.CallOption) (*UpdateWriterIdResponse, error)
	ListDatabases(ctx context.Context, in *ListDatabasesRequest, opts ...grpc.CallOption) (*ListDatabasesResponse, error)
	GetDatabase(ctx context.Context, in *GetDatabaseRequest, opts ...grpc.CallOption) (*GetDatabaseResponse, error)
	CreateDatabase(ctx context.Context, in *CreateDatabaseRequest, opts ...grpc.CallOption) (*CreateDatabaseResponse, error)
}

type seriesDBMasterClient struct {
	cc grpc.ClientConnInterface
}

func NewSeriesDBMasterClient(cc grpc.ClientConnInterface) SeriesDBMasterClient {
	return &seriesDBMasterClient{cc}
}

func (c *seriesDBMasterClient) GetWriterId(ctx context.Context, in *GetWriterIdRequest, opts ...grpc.CallOption) (*GetWriterIdResponse, error) {
	out := new(GetWriterIdResponse)
	if err := c.cc.Invoke(ctx, methodGetWriterId, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *seriesDBMasterClient) UpdateWriterId(ctx context.Context, in *UpdateWriterIdRequest, opts ...grpc.CallOption) (*UpdateWriterIdResponse, error) {
	out := new(UpdateWriterIdResponse)
	if err := c.cc.Invoke(ctx, methodUpdateWriterId, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *seriesDBMasterClient) ListDatabases(ctx context.Context, in *ListDatabasesRequest, opts ...grpc.CallOption) (*ListDatabasesResponse, error) {
	out := new(ListDatabasesResponse)
	if err := c.cc.Invoke(ctx, methodListDatabases, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *seriesDBMasterClient) GetDatabase(ctx context.Context, in *GetDatabaseRequest, opts ...grpc.CallOption) (*GetDatabaseResponse, error) {
	out := new(GetDatabaseResponse)
	if err := c.cc.Invoke(ctx, methodGetDatabase, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *seriesDBMasterClient) CreateDatabase(ctx context.Context, in *CreateDatabaseRequest, opts ...grpc.CallOption) (*CreateDatabaseResponse, error) {
	out := new(CreateDatabaseResponse)
	if err := c.cc.Invoke(ctx, methodCreateDatabase, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type SeriesDBMasterServer interface {
	GetWriterId(context.Context, *GetWriterIdRequest) (*GetWriterIdResponse, error)
	UpdateWriterId(context.Context, *UpdateWriterIdRequest) (*UpdateWriterIdResponse, error)
	ListDatabases(context.Context, *ListDatabasesRequest) (*ListDatabasesResponse, error)
	GetDatabase(context.Context, *GetDatabaseRequest) (*GetDatabaseResponse, error)
	CreateDatabase(context.Context, *CreateDatabaseRequest) (*CreateDatabaseResponse, error)
}

func RegisterSeriesDBMasterServer(s *grpc.Server, srv SeriesDBMasterServer) {
	s.RegisterService(&seriesDBMasterServiceDesc, srv)
}

func getWriterIdHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetWriterIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeriesDBMasterServer).GetWriterId(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: methodGetWriterId,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeriesDBMasterServer).GetWriterId(ctx, req.(*GetWriterIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func updateWriterIdHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateWriterIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeriesDBMasterServer).UpdateWriterId(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: methodUpdateWriterId,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeriesDBMasterServer).UpdateWriterId(ctx, req.(*UpdateWriterIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func listDatabasesHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDatabasesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeriesDBMasterServer).ListDatabases(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: methodListDatabases,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeriesDBMasterServer).ListDatabases(ctx, req.(*ListDatabasesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getDatabaseHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDatabaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeriesDBMasterServer).GetDatabase(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: methodGetDatabase,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeriesDBMasterServer).GetDatabase(ctx, req.(*GetDatabaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func createDatabaseHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateDatabaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeriesDBMasterServer).CreateDatabase(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: methodCreateDatabase,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeriesDBMasterServer).CreateDatabase(ctx, req.(*CreateDatabaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var seriesDBMasterServiceDesc = grpc.ServiceDesc{
	ServiceName: "seriesdb.SeriesDBMaster",
	HandlerType: (*SeriesDBMasterServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetWriterId",
			Handler:    getWriterIdHandler,
		},
		{
			MethodName: "UpdateWriterId",
			Handler:    updateWriterIdHandler,
		},
		{
			MethodName: "ListDatabases",
			Handler:    listDatabasesHandler,
		},
		{
			MethodName: "GetDatabase",
			Handler:    getDatabaseHandler,
		},
		{
			MethodName: "CreateDatabase",
			Handler:    createDatabaseHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "seriesdb.proto",
}
