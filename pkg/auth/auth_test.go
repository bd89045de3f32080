package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"google.golang.org/protobuf/types/known/structpb"

	"droscher.com/BeerStyles/configs"
	"droscher.com/BeerStyles/pkg/auth"
)

const (
	readProcedure  = "/test.v1.TestService/Read"
	writeProcedure = "/test.v1.TestService/Write"
	secret         = "test-secret"
)

type AuthTestSuite struct {
	suite.Suite
	server *httptest.Server
	read   *connect.Client[structpb.Struct, structpb.Struct]
	write  *connect.Client[structpb.Struct, structpb.Struct]
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (suite *AuthTestSuite) SetupTest() {
	conf := &configs.Config{Auth: configs.Auth{SecretKey: secret, Audience: "styles", Domain: "auth.test"}}
	manager := auth.NewAuthManager(conf, zaptest.NewLogger(suite.T()), writeProcedure)
	interceptors := connect.WithInterceptors(manager.GrpcAuthInterceptor())

	echoSubject := func(ctx context.Context, _ *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
		subject, _ := auth.Subject(ctx)

		return connect.NewResponse(&structpb.Struct{Fields: map[string]*structpb.Value{
			"subject": structpb.NewStringValue(subject),
		}}), nil
	}

	mux := http.NewServeMux()
	mux.Handle(readProcedure, connect.NewUnaryHandler(readProcedure, echoSubject, interceptors))
	mux.Handle(writeProcedure, connect.NewUnaryHandler(writeProcedure, echoSubject, interceptors))

	suite.server = httptest.NewServer(mux)
	suite.read = connect.NewClient[structpb.Struct, structpb.Struct](suite.server.Client(), suite.server.URL+readProcedure)
	suite.write = connect.NewClient[structpb.Struct, structpb.Struct](suite.server.Client(), suite.server.URL+writeProcedure)
}

func (suite *AuthTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *AuthTestSuite) token(method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	suite.Require().NoError(err)

	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub": "brewer@example.com",
		"aud": "styles",
		"iss": "https://auth.test/",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
}

func (suite *AuthTestSuite) call(client *connect.Client[structpb.Struct, structpb.Struct], authorization string) (*connect.Response[structpb.Struct], error) {
	request := connect.NewRequest(&structpb.Struct{})
	if authorization != "" {
		request.Header().Set("Authorization", authorization)
	}

	return client.CallUnary(context.Background(), request)
}

func (suite *AuthTestSuite) TestRead_ValidTokenStoresSubject() {
	token := suite.token(jwt.SigningMethodHS256, []byte(secret), validClaims())

	response, err := suite.call(suite.read, "Bearer "+token)
	suite.Require().NoError(err)
	suite.Equal("brewer@example.com", response.Msg.GetFields()["subject"].GetStringValue())
}

func (suite *AuthTestSuite) TestMissingHeader() {
	_, err := suite.call(suite.read, "")
	suite.Require().Error(err)
	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
	suite.ErrorContains(err, "authorization header not found")
}

func (suite *AuthTestSuite) TestWrongFormat() {
	_, err := suite.call(suite.read, "Token abc")
	suite.Require().Error(err)
	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *AuthTestSuite) TestWrongSecret() {
	token := suite.token(jwt.SigningMethodHS256, []byte("other-secret"), validClaims())

	_, err := suite.call(suite.read, "Bearer "+token)
	suite.Require().Error(err)
	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *AuthTestSuite) TestExpiredToken() {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	token := suite.token(jwt.SigningMethodHS256, []byte(secret), claims)

	_, err := suite.call(suite.read, "bearer "+token)
	suite.Require().Error(err)
	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *AuthTestSuite) TestWrongAudience() {
	claims := validClaims()
	claims["aud"] = "cellars"
	token := suite.token(jwt.SigningMethodHS256, []byte(secret), claims)

	_, err := suite.call(suite.read, "Bearer "+token)
	suite.Require().Error(err)
	suite.ErrorContains(err, "invalid audience")
}

func (suite *AuthTestSuite) TestWrongIssuer() {
	claims := validClaims()
	claims["iss"] = "https://elsewhere.test/"
	token := suite.token(jwt.SigningMethodHS256, []byte(secret), claims)

	_, err := suite.call(suite.read, "Bearer "+token)
	suite.Require().Error(err)
	suite.ErrorContains(err, "invalid issuer")
}

func (suite *AuthTestSuite) TestMissingSubject() {
	claims := validClaims()
	delete(claims, "sub")
	token := suite.token(jwt.SigningMethodHS256, []byte(secret), claims)

	_, err := suite.call(suite.read, "Bearer "+token)
	suite.Require().Error(err)
	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *AuthTestSuite) TestWrite_RequiresScope() {
	token := suite.token(jwt.SigningMethodHS256, []byte(secret), validClaims())

	_, err := suite.call(suite.write, "Bearer "+token)
	suite.Require().Error(err)
	suite.Equal(connect.CodePermissionDenied, connect.CodeOf(err))
}

func (suite *AuthTestSuite) TestWrite_WithScope() {
	claims := validClaims()
	claims["scope"] = "styles:read styles:write"
	token := suite.token(jwt.SigningMethodHS256, []byte(secret), claims)

	response, err := suite.call(suite.write, "Bearer "+token)
	suite.Require().NoError(err)
	suite.Equal("brewer@example.com", response.Msg.GetFields()["subject"].GetStringValue())
}
