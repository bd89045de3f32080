package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bufbuild/connect-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"google.golang.org/protobuf/types/known/structpb"

	"droscher.com/BeerStyles/configs"
	"droscher.com/BeerStyles/mocks"
	"droscher.com/BeerStyles/pkg/metrics"
	"droscher.com/BeerStyles/pkg/model"
	"droscher.com/BeerStyles/pkg/repository"
	"droscher.com/BeerStyles/pkg/server"
	"droscher.com/BeerStyles/pkg/server/grpc"
)

type staticIntegration struct {
	styles []model.Style
	err    error
	query  string
}

func (s *staticIntegration) FindStyles(query string) ([]model.Style, error) {
	s.query = query

	return s.styles, s.err
}

type CmdTestSuite struct {
	suite.Suite
	styleRepo *mocks.StyleRepository
	out       *bytes.Buffer
}

func TestCmdTestSuite(t *testing.T) {
	suite.Run(t, new(CmdTestSuite))
}

func (suite *CmdTestSuite) SetupTest() {
	suite.styleRepo = mocks.NewStyleRepository(suite.T())
	suite.out = &bytes.Buffer{}
}

func testIPAFlags() StyleFlags {
	return StyleFlags{
		Name:                "Test IPA",
		ABVLow:              5.5,
		ABVHigh:             7.5,
		IBULow:              40,
		IBUHigh:             70,
		SRMLow:              6,
		SRMHigh:             14,
		OriginalGravityLow:  1.056,
		OriginalGravityHigh: 1.07,
		FinalGravityLow:     1.008,
		FinalGravityHigh:    1.014,
	}
}

func (suite *CmdTestSuite) TestStyleCreate() {
	command := &StyleCreateCmd{StyleFlags: testIPAFlags()}
	suite.styleRepo.EXPECT().CreateStyle(mock.Anything, command.Style()).Return("Test IPA", nil)

	suite.Require().NoError(command.run(context.Background(), suite.styleRepo, suite.out))
	suite.Equal("created: Test IPA\n", suite.out.String())
}

func (suite *CmdTestSuite) TestStyleRead() {
	style := testIPAFlags().Style()
	suite.styleRepo.EXPECT().ReadStyle(mock.Anything, "Test IPA").Return(&style, nil)

	command := &StyleReadCmd{Name: "Test IPA"}
	suite.Require().NoError(command.run(context.Background(), suite.styleRepo, suite.out))
	suite.Contains(suite.out.String(), "name: Test IPA\n")
	suite.Contains(suite.out.String(), "ibuHigh: 70\n")
	suite.Contains(suite.out.String(), "originalGravityHigh: 1.07\n")
}

func (suite *CmdTestSuite) TestStyleRead_NotFound() {
	suite.styleRepo.EXPECT().ReadStyle(mock.Anything, "Nothing").Return(nil, repository.ErrStyleNotFound)

	command := &StyleReadCmd{Name: "Nothing"}
	suite.Require().ErrorIs(command.run(context.Background(), suite.styleRepo, suite.out), repository.ErrStyleNotFound)
	suite.Empty(suite.out.String())
}

func (suite *CmdTestSuite) TestStyleUpdate() {
	flags := testIPAFlags()
	flags.IBUHigh = 80
	style := flags.Style()
	suite.styleRepo.EXPECT().UpdateStyle(mock.Anything, style).Return(&style, nil)

	command := &StyleUpdateCmd{StyleFlags: flags}
	suite.Require().NoError(command.run(context.Background(), suite.styleRepo, suite.out))
	suite.Contains(suite.out.String(), "ibuHigh: 80\n")
}

func (suite *CmdTestSuite) TestStyleDelete() {
	suite.styleRepo.EXPECT().DeleteStyle(mock.Anything, "Test IPA").Return(false, nil)

	command := &StyleDeleteCmd{Name: "Test IPA"}
	suite.Require().NoError(command.run(context.Background(), suite.styleRepo, suite.out))
	suite.Equal("deleted: false\n", suite.out.String())
}

func (suite *CmdTestSuite) TestImportStyles() {
	lager := testIPAFlags().Style()
	lager.Name = "American Lager"
	integration := &staticIntegration{styles: []model.Style{testIPAFlags().Style(), lager}}

	suite.styleRepo.EXPECT().UpdateStyle(mock.Anything, testIPAFlags().Style()).Return(nil, repository.ErrExecution)
	suite.styleRepo.EXPECT().UpdateStyle(mock.Anything, lager).Return(&lager, nil)

	err := importStyles(context.Background(), integration, "lager", suite.styleRepo, zaptest.NewLogger(suite.T()), suite.out)
	suite.Require().ErrorIs(err, repository.ErrExecution)
	suite.ErrorContains(err, `importing "Test IPA"`)
	suite.Equal("lager", integration.query)
	suite.Equal("found: 2\nimported: 1\n", suite.out.String())
}

func (suite *CmdTestSuite) TestImportStyles_IntegrationError() {
	scrapeErr := errors.New("index unavailable")
	integration := &staticIntegration{err: scrapeErr}

	err := importStyles(context.Background(), integration, "", suite.styleRepo, zaptest.NewLogger(suite.T()), suite.out)
	suite.Require().ErrorIs(err, scrapeErr)
	suite.Equal("found: 0\nimported: 0\n", suite.out.String())
}

func (suite *CmdTestSuite) TestOpenStore_UnknownStore() {
	_, _, err := openStore(&configs.Config{Store: "memory"}, zaptest.NewLogger(suite.T()))
	suite.Require().ErrorIs(err, configs.ErrConfiguration)
}

func (suite *CmdTestSuite) serve(conf *configs.Config) *httptest.Server {
	logger := zaptest.NewLogger(suite.T())
	registry := prometheus.NewRegistry()
	repo := metrics.NewInstrumentedRepository(suite.styleRepo, metrics.New(registry))

	httpServer := httptest.NewServer(newServeMux(conf, repo, registry, logger))
	suite.T().Cleanup(httpServer.Close)

	return httpServer
}

func (suite *CmdTestSuite) TestServeMux_ReadAndMetrics() {
	style := testIPAFlags().Style()
	suite.styleRepo.EXPECT().ReadStyle(mock.Anything, "Test IPA").Return(&style, nil)

	httpServer := suite.serve(&configs.Config{})

	client := connect.NewClient[structpb.Struct, structpb.Struct](httpServer.Client(), httpServer.URL+server.ReadStyleProcedure)
	response, err := client.CallUnary(context.Background(), connect.NewRequest(grpc.NameMessage("Test IPA")))
	suite.Require().NoError(err)
	suite.Equal("Test IPA", response.Msg.GetFields()["name"].GetStringValue())

	metricsResponse, err := httpServer.Client().Get(httpServer.URL + "/metrics")
	suite.Require().NoError(err)
	defer metricsResponse.Body.Close()

	body, err := io.ReadAll(metricsResponse.Body)
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, metricsResponse.StatusCode)
	suite.Contains(string(body), `beerstyles_style_operations_total{operation="read",outcome="ok"} 1`)
}

func (suite *CmdTestSuite) TestServeMux_AuthEnabled() {
	httpServer := suite.serve(&configs.Config{Auth: configs.Auth{SecretKey: "secret"}})

	client := connect.NewClient[structpb.Struct, structpb.Struct](httpServer.Client(), httpServer.URL+server.DeleteStyleProcedure)
	_, err := client.CallUnary(context.Background(), connect.NewRequest(grpc.NameMessage("Test IPA")))
	suite.Require().Error(err)
	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *CmdTestSuite) preflight(handler http.Handler, requestHeaders string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodOptions, server.ReadStyleProcedure, nil)
	request.Header.Set("Origin", "https://styles.example")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)
	request.Header.Set("Access-Control-Request-Headers", requestHeaders)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	return recorder
}

func (suite *CmdTestSuite) TestConfigureCORS_AllowedHeaders() {
	handler := configureCORS(newServeMux(&configs.Config{}, suite.styleRepo, prometheus.NewRegistry(), zaptest.NewLogger(suite.T())))

	allowed := suite.preflight(handler, "authorization,connect-protocol-version,content-type")
	suite.NotEmpty(allowed.Header().Get("Access-Control-Allow-Origin"))

	rejected := suite.preflight(handler, "custom-header-1")
	suite.Empty(rejected.Header().Get("Access-Control-Allow-Origin"))
}
