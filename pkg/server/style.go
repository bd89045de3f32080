package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/structpb"

	"droscher.com/BeerStyles/pkg/graph"
	"droscher.com/BeerStyles/pkg/repository"
	"droscher.com/BeerStyles/pkg/server/grpc"
)

const StyleServiceName = "beerstyles.v1.StyleService"

const (
	CreateStyleProcedure = "/" + StyleServiceName + "/CreateStyle"
	ReadStyleProcedure   = "/" + StyleServiceName + "/ReadStyle"
	UpdateStyleProcedure = "/" + StyleServiceName + "/UpdateStyle"
	DeleteStyleProcedure = "/" + StyleServiceName + "/DeleteStyle"
)

// WriteProcedures lists the procedures that change stored styles.
func WriteProcedures() []string {
	return []string{CreateStyleProcedure, UpdateStyleProcedure, DeleteStyleProcedure}
}

type StyleServer struct {
	repository repository.StyleRepository
	logger     *zap.Logger
}

func NewStyleServer(repository repository.StyleRepository, logger *zap.Logger) *StyleServer {
	return &StyleServer{repository: repository, logger: logger}
}

// NewStyleServiceHandler returns the path prefix and handler serving every StyleService procedure.
func NewStyleServiceHandler(svc *StyleServer, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(CreateStyleProcedure, connect.NewUnaryHandler(CreateStyleProcedure, svc.CreateStyle, opts...))
	mux.Handle(ReadStyleProcedure, connect.NewUnaryHandler(ReadStyleProcedure, svc.ReadStyle, opts...))
	mux.Handle(UpdateStyleProcedure, connect.NewUnaryHandler(UpdateStyleProcedure, svc.UpdateStyle, opts...))
	mux.Handle(DeleteStyleProcedure, connect.NewUnaryHandler(DeleteStyleProcedure, svc.DeleteStyle, opts...))

	return "/" + StyleServiceName + "/", mux
}

func (s *StyleServer) CreateStyle(ctx context.Context, request *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	style, err := grpc.StyleToModel(request.Msg)
	if err != nil {
		return nil, s.connectError(err)
	}

	name, err := s.repository.CreateStyle(ctx, style)
	if err != nil {
		return nil, s.connectError(err)
	}

	return connect.NewResponse(grpc.NameMessage(name)), nil
}

func (s *StyleServer) ReadStyle(ctx context.Context, request *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	name, err := grpc.NameFromMessage(request.Msg)
	if err != nil {
		return nil, s.connectError(err)
	}

	style, err := s.repository.ReadStyle(ctx, name)
	if err != nil {
		return nil, s.connectError(err)
	}

	return connect.NewResponse(grpc.StyleFromModel(*style)), nil
}

func (s *StyleServer) UpdateStyle(ctx context.Context, request *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	style, err := grpc.StyleToModel(request.Msg)
	if err != nil {
		return nil, s.connectError(err)
	}

	updated, err := s.repository.UpdateStyle(ctx, style)
	if err != nil {
		return nil, s.connectError(err)
	}

	return connect.NewResponse(grpc.StyleFromModel(*updated)), nil
}

func (s *StyleServer) DeleteStyle(ctx context.Context, request *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	name, err := grpc.NameFromMessage(request.Msg)
	if err != nil {
		return nil, s.connectError(err)
	}

	deleted, err := s.repository.DeleteStyle(ctx, name)
	if err != nil {
		return nil, s.connectError(err)
	}

	return connect.NewResponse(grpc.DeletedMessage(deleted)), nil
}

func (s *StyleServer) connectError(err error) error {
	switch {
	case errors.Is(err, repository.ErrStyleNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, repository.ErrInvalidStyle), errors.Is(err, grpc.ErrInvalidMessage):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, graph.ErrConnectFailed):
		s.logger.Error("style store unavailable", zap.Error(err))

		return connect.NewError(connect.CodeUnavailable, err)
	default:
		s.logger.Error("style request failed", zap.Error(err))

		return connect.NewError(connect.CodeInternal, err)
	}
}
