package firestore

import (
	"context"
	"errors"
	"time"

	fs "cloud.google.com/go/firestore"
	crerr "github.com/cockroachdb/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/riskibarqy/club-stats/internal/platform/logging"
	"github.com/riskibarqy/club-stats/internal/platform/resilience"
)

const (
	playersCollection = "players"
	matchesCollection = "matches"
	awardsCollection  = "monthlyAwards"
)

type Options struct {
	Timeout time.Duration
	Circuit resilience.CircuitBreakerConfig
	Logger  *logging.Logger
}

// Store runs every Firestore call under a per-call timeout and, when enabled,
// a circuit breaker shared by all collections.
type Store struct {
	client  *fs.Client
	timeout time.Duration
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

func NewStore(client *fs.Client, opts Options) *Store {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("repository.firestore")

	s := &Store{
		client:  client,
		timeout: opts.Timeout,
		logger:  logger,
	}
	if opts.Circuit.Enabled {
		s.breaker = resilience.NewCircuitBreaker("firestore", opts.Circuit,
			resilience.WithFailureClassifier(isBackendFailure),
			resilience.WithStateChangeHook(func(name string, from, to resilience.CircuitState) {
				logger.Warn("circuit state changed", "circuit", name, "from", from, "to", to)
			}),
		)
	}
	return s
}

func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *Store) do(ctx context.Context, op string, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var err error
	if s.breaker != nil {
		err = s.breaker.Execute(ctx, fn)
	} else {
		err = fn(ctx)
	}
	if err != nil {
		return crerr.Wrapf(err, "firestore %s", op)
	}
	return nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// isBackendFailure excludes outcomes that say nothing about backend health.
func isBackendFailure(err error) bool {
	if err == nil || errors.Is(err, errMalformedDocument) {
		return false
	}
	switch status.Code(err) {
	case codes.NotFound, codes.InvalidArgument, codes.AlreadyExists, codes.FailedPrecondition:
		return false
	default:
		return true
	}
}
