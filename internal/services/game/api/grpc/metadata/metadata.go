package metadata

import (
	"context"
	"strings"

	"github.com/louisbranch/chronicles.mud/internal/platform/id"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader is the gRPC metadata key for request correlation IDs.
const RequestIDHeader = "x-chronicles-request-id"

// CallerIDHeader names the caller's own character.
const CallerIDHeader = "x-chronicles-caller-id"

// LocaleHeader selects the language of user-facing messages.
const LocaleHeader = "x-chronicles-locale"

// AuthorizationHeader carries "Bearer <staff token>".
const AuthorizationHeader = "authorization"

const bearerPrefix = "bearer "

type contextKey string

const requestIDContextKey contextKey = "chronicles-request-id"

// RequestIDFromContext returns the request ID stored in context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDContextKey).(string)
	return value
}

// WithRequestID stores the request ID in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// CallerIDFromContext returns the caller ID from incoming metadata.
func CallerIDFromContext(ctx context.Context) string {
	return strings.TrimSpace(metadataValueFromIncomingContext(ctx, CallerIDHeader))
}

// LocaleFromContext returns the locale from incoming metadata.
func LocaleFromContext(ctx context.Context) string {
	return strings.TrimSpace(metadataValueFromIncomingContext(ctx, LocaleHeader))
}

// BearerTokenFromContext returns the bearer token from incoming metadata.
func BearerTokenFromContext(ctx context.Context) string {
	value := strings.TrimSpace(metadataValueFromIncomingContext(ctx, AuthorizationHeader))
	if len(value) < len(bearerPrefix) || !strings.EqualFold(value[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(value[len(bearerPrefix):])
}

// Outgoing describes the headers a client attaches to each call.
type Outgoing struct {
	RequestID  string
	CallerID   string
	StaffToken string
	Locale     string
}

// AppendToOutgoingContext attaches the non-empty headers in out to ctx.
func AppendToOutgoingContext(ctx context.Context, out Outgoing) context.Context {
	pairs := make([]string, 0, 8)
	if out.RequestID != "" {
		pairs = append(pairs, RequestIDHeader, out.RequestID)
	}
	if out.CallerID != "" {
		pairs = append(pairs, CallerIDHeader, out.CallerID)
	}
	if out.StaffToken != "" {
		pairs = append(pairs, AuthorizationHeader, "Bearer "+out.StaffToken)
	}
	if out.Locale != "" {
		pairs = append(pairs, LocaleHeader, out.Locale)
	}
	if len(pairs) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...)
}

// IsPrintableASCII reports whether a string contains only printable ASCII characters.
func IsPrintableASCII(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}

// FirstMetadataValue returns the first printable ASCII metadata value for a key.
func FirstMetadataValue(md metadata.MD, key string) string {
	if len(md) == 0 {
		return ""
	}
	for mdKey, values := range md {
		if !strings.EqualFold(mdKey, key) {
			continue
		}
		for _, value := range values {
			if IsPrintableASCII(value) {
				return value
			}
		}
	}
	return ""
}

// UnaryServerInterceptor guarantees every inbound call has a request ID and
// echoes it back as a response header.
func UnaryServerInterceptor(idGenerator func() (string, error)) grpc.UnaryServerInterceptor {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		updatedCtx, requestID, err := ensureRequestID(ctx, idGenerator)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "ensure request metadata: %v", err)
		}
		if err := grpc.SetHeader(updatedCtx, metadata.Pairs(RequestIDHeader, requestID)); err != nil {
			return nil, status.Errorf(codes.Internal, "set response metadata: %v", err)
		}
		return handler(updatedCtx, req)
	}
}

// ensureRequestID reuses the inbound request ID or generates one.
func ensureRequestID(ctx context.Context, idGenerator func() (string, error)) (context.Context, string, error) {
	requestID := metadataValueFromIncomingContext(ctx, RequestIDHeader)
	if requestID == "" {
		generatedID, err := idGenerator()
		if err != nil {
			return nil, "", err
		}
		requestID = generatedID
	}
	return WithRequestID(ctx, requestID), requestID, nil
}

func metadataValueFromIncomingContext(ctx context.Context, header string) string {
	if ctx == nil {
		return ""
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	return FirstMetadataValue(md, header)
}
