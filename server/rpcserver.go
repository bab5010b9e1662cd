// Copyright 2023 The SeriesDB Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/cubefs/cubefs/blobstore/common/trace"
	"github.com/cubefs/cubefs/blobstore/util/errors"
	"github.com/cubefs/cubefs/blobstore/util/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	apierrors "github.com/openseries/seriesdb/errors"
	"github.com/openseries/seriesdb/metrics"
	"github.com/openseries/seriesdb/proto"
	"github.com/openseries/seriesdb/util/limiter"
)

var auditLogPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

type RPCServer struct {
	*Server

	grpcServer *grpc.Server
	limiter    limiter.Limiter
}

func NewRPCServer(server *Server) *RPCServer {
	rs := &RPCServer{
		Server:  server,
		limiter: limiter.NewLimiter(server.cfg.RpcLimitConfig),
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		rs.unaryInterceptorWithTracer,
		rs.unaryInterceptorWithAuditLog,
		metrics.GRPCMetrics.UnaryServerInterceptor(),
	))
	proto.RegisterSeriesDBMasterServer(s, rs)
	rs.grpcServer = s
	return rs
}

func (r *RPCServer) Serve(addr string) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal("rpc server listen failed:", err)
	}
	go func() {
		if err := r.grpcServer.Serve(lis); err != nil {
			log.Fatal("rpc server exits:", err)
		}
	}()

	log.Info("rpc server is running at:", addr)
}

func (r *RPCServer) Stop() {
	r.grpcServer.GracefulStop()
}

func (r *RPCServer) GetWriterId(ctx context.Context, req *proto.GetWriterIdRequest) (*proto.GetWriterIdResponse, error) {
	if err := r.limiter.AcquireRead(); err != nil {
		return nil, rpcError(err)
	}
	defer r.limiter.ReleaseRead()

	id, err := r.master.GetWriterID(ctx)
	if err != nil {
		if err == apierrors.ErrWriterIDNotSet {
			// an unassigned id is not a failure, the zero id tells the
			// caller to pick one
			return &proto.GetWriterIdResponse{Id: 0}, nil
		}
		return nil, rpcError(err)
	}

	return &proto.GetWriterIdResponse{Id: id}, nil
}

func (r *RPCServer) UpdateWriterId(ctx context.Context, req *proto.UpdateWriterIdRequest) (*proto.UpdateWriterIdResponse, error) {
	if err := r.limiter.AcquireWrite(); err != nil {
		return nil, rpcError(err)
	}
	defer r.limiter.ReleaseWrite()

	span := trace.SpanFromContextSafe(ctx)
	if err := r.master.SetWriterID(ctx, req.Id); err != nil {
		span.Errorf("update writer id to %d failed: %s", req.Id, errors.Detail(err))
		return nil, rpcError(err)
	}

	return &proto.UpdateWriterIdResponse{}, nil
}

func (r *RPCServer) ListDatabases(ctx context.Context, req *proto.ListDatabasesRequest) (*proto.ListDatabasesResponse, error) {
	if err := r.limiter.AcquireRead(); err != nil {
		return nil, rpcError(err)
	}
	defer r.limiter.ReleaseRead()

	names, err := r.master.ListDatabases(ctx)
	if err != nil {
		return nil, rpcError(err)
	}

	return &proto.ListDatabasesResponse{Names: names}, nil
}

func (r *RPCServer) GetDatabase(ctx context.Context, req *proto.GetDatabaseRequest) (*proto.GetDatabaseResponse, error) {
	if err := r.limiter.AcquireRead(); err != nil {
		return nil, rpcError(err)
	}
	defer r.limiter.ReleaseRead()

	rules, err := r.master.GetDatabase(ctx, req.Name)
	if err != nil {
		return nil, rpcError(err)
	}

	return &proto.GetDatabaseResponse{Rules: rules}, nil
}

func (r *RPCServer) CreateDatabase(ctx context.Context, req *proto.CreateDatabaseRequest) (*proto.CreateDatabaseResponse, error) {
	if err := r.limiter.AcquireWrite(); err != nil {
		return nil, rpcError(err)
	}
	defer r.limiter.ReleaseWrite()

	span := trace.SpanFromContextSafe(ctx)
	if err := r.master.CreateDatabase(ctx, req.Rules); err != nil {
		span.Errorf("create database failed: %s", errors.Detail(err))
		return nil, rpcError(err)
	}

	return &proto.CreateDatabaseResponse{}, nil
}

// rpcError turns module errors into grpc status codes, everything unknown
// comes back as Unavailable so the caller knows a retry may help.
func rpcError(err error) error {
	switch err {
	case nil:
		return nil
	case apierrors.ErrInvalidDatabaseName, apierrors.ErrInvalidRetention,
		apierrors.ErrInvalidReplicaNum, apierrors.ErrInvalidShardNum,
		apierrors.ErrInvalidPartitionPeriod, apierrors.ErrInvalidWriterID:
		return status.Error(codes.InvalidArgument, err.Error())
	case apierrors.ErrDatabaseDoesNotExist, apierrors.ErrWriterIDNotSet:
		return status.Error(codes.NotFound, err.Error())
	case apierrors.ErrDatabaseAlreadyCreated, apierrors.ErrWriterIDAlreadySet:
		return status.Error(codes.AlreadyExists, err.Error())
	case limiter.ErrLimitExceeded:
		return status.Error(codes.ResourceExhausted, err.Error())
	default:
		return status.Error(codes.Unavailable, err.Error())
	}
}

func (r *RPCServer) unaryInterceptorWithTracer(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "failed to get metadata")
	}
	if reqId, ok := md[proto.ReqIdKey]; ok {
		_, ctx = trace.StartSpanFromContextWithTraceID(ctx, "", reqId[0])
	} else {
		_, ctx = trace.StartSpanFromContext(ctx, "")
	}

	return handler(ctx, req)
}

func (r *RPCServer) unaryInterceptorWithAuditLog(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	start := time.Now()

	resp, err = handler(ctx, req)

	span := trace.SpanFromContextSafe(ctx)
	in, _ := json.Marshal(req)
	out, _ := json.Marshal(resp)
	duration := int64(time.Since(start) / time.Millisecond)
	bw := auditLogPool.Get().(*bytes.Buffer)
	defer auditLogPool.Put(bw)
	bw.Reset()
	bw.WriteString(info.FullMethod)
	bw.WriteString("\t")
	bw.Write(in)
	bw.WriteString("\t")
	bw.Write(out)
	bw.WriteString("\t")
	bw.WriteString(strconv.FormatInt(duration, 10))
	if err != nil {
		bw.WriteString("\t")
		bw.WriteString(err.Error())
	}
	span.Info(bw.String())

	return
}
