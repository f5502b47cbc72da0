// Package interceptors holds the unary server interceptors of the game
// service: caller identity, domain error translation and the audit log.
package interceptors

import (
	"context"
	"log"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "github.com/louisbranch/chronicles.mud/internal/platform/errors"
	grpcmeta "github.com/louisbranch/chronicles.mud/internal/services/game/api/grpc/metadata"
	"github.com/louisbranch/chronicles.mud/internal/services/game/authz"
)

// readMethods lists method names, without the service prefix, that never
// change a track.
var readMethods = map[string]bool{
	"GetStatus": true,
}

// AuditInterceptor writes one log line for each unary call. A nil logf uses
// log.Printf.
func AuditInterceptor(logf func(string, ...any)) grpc.UnaryServerInterceptor {
	if logf == nil {
		logf = log.Printf
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := callCode(err)
		caller, _ := authz.CallerFromContext(ctx)

		var traceID, spanID string
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			traceID = sc.TraceID().String()
			spanID = sc.SpanID().String()
		}

		logf("audit method=%s kind=%s code=%s request_id=%s caller=%s staff=%t trace_id=%s span_id=%s duration=%s",
			info.FullMethod,
			classifyMethodKind(info.FullMethod),
			code.String(),
			grpcmeta.RequestIDFromContext(ctx),
			caller.ID,
			caller.Staff,
			traceID,
			spanID,
			time.Since(start).Round(time.Microsecond),
		)
		return resp, err
	}
}

func classifyMethodKind(fullMethod string) string {
	name := fullMethod
	if slash := strings.LastIndex(fullMethod, "/"); slash >= 0 {
		name = fullMethod[slash+1:]
	}
	if readMethods[name] {
		return "read"
	}
	return "write"
}

// callCode reports the status code a call ends with, looking through domain
// errors that ErrorInterceptor has not translated yet.
func callCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if domainErr, ok := apperrors.As(err); ok {
		return domainErr.Code.GRPCCode()
	}
	return status.Code(err)
}
