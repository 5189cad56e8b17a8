package interceptor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"nexus-asset-manager/internal/config"
	"nexus-asset-manager/internal/security"
)

const reflectionMethod = "/grpc.reflection.v1.ServerReflection/ServerReflectionInfo"

func newInterceptor(t *testing.T) (*AuthInterceptor, security.TokenManager) {
	t.Helper()
	tm := security.NewTokenManager(config.AuthConfig{JWTSecret: strings.Repeat("k", 32)})
	return NewAuthInterceptor(tm), tm
}

func withAuth(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
}

func TestAuthInterceptor_Unary(t *testing.T) {
	i, tm := newInterceptor(t)
	unary := i.Unary()

	var seen context.Context
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = ctx
		return "ok", nil
	}

	t.Run("Health check is public", func(t *testing.T) {
		resp, err := unary(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}, handler)
		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
	})

	t.Run("Missing token", func(t *testing.T) {
		_, err := unary(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/nexus.Unknown/Call"}, handler)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("Invalid token", func(t *testing.T) {
		_, err := unary(withAuth("garbage"), nil, &grpc.UnaryServerInfo{FullMethod: "/nexus.Unknown/Call"}, handler)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("Valid token injects subject", func(t *testing.T) {
		token, err := tm.GenerateAccessToken("admin-1", "it@example.com", nil)
		require.NoError(t, err)

		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
			"authorization", "bearer "+token,
			"subject", "spoofed",
		))
		_, err = unary(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/nexus.Unknown/Call"}, handler)
		require.NoError(t, err)

		subject, err := SubjectFromContext(seen)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", subject)
	})
}

type fakeStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f *fakeStream) Context() context.Context { return f.ctx }

func TestAuthInterceptor_Stream(t *testing.T) {
	i, tm := newInterceptor(t)
	stream := i.Stream()

	var seen context.Context
	handler := func(srv interface{}, ss grpc.ServerStream) error {
		seen = ss.Context()
		return nil
	}

	err := stream(nil, &fakeStream{ctx: context.Background()}, &grpc.StreamServerInfo{FullMethod: "/grpc.health.v1.Health/Watch"}, handler)
	require.NoError(t, err)

	err = stream(nil, &fakeStream{ctx: context.Background()}, &grpc.StreamServerInfo{FullMethod: reflectionMethod}, handler)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	token, err := tm.GenerateAccessToken("admin-2", "", nil)
	require.NoError(t, err)
	err = stream(nil, &fakeStream{ctx: withAuth(token)}, &grpc.StreamServerInfo{FullMethod: reflectionMethod}, handler)
	require.NoError(t, err)
	subject, err := SubjectFromContext(seen)
	require.NoError(t, err)
	assert.Equal(t, "admin-2", subject)
}

func TestSubjectFromContext_Missing(t *testing.T) {
	_, err := SubjectFromContext(context.Background())
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = SubjectFromContext(metadata.NewIncomingContext(context.Background(), metadata.MD{}))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
