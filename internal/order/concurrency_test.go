package order

import (
	"context"
	"sync"
	"testing"

	"github.com/rajneesh-anand/geenia-api/internal/metrics"
	"github.com/rajneesh-anand/geenia-api/internal/notify"
	"github.com/rajneesh-anand/geenia-api/internal/payment"
	"github.com/rajneesh-anand/geenia-api/internal/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo serializes transitions with a mutex-guarded compare-and-swap,
// mirroring the conditional UPDATE of the SQL repository.
type memRepo struct {
	mu          sync.Mutex
	orders      map[string]*Order
	transitions int
}

func newMemRepo() *memRepo {
	return &memRepo{orders: map[string]*Order{}}
}

func (m *memRepo) CreatePending(_ context.Context, o *Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.Status = StatusPending
	cp := *o
	m.orders[o.OrderNumber] = &cp
	return nil
}

func (m *memRepo) FindByOrderNumber(_ context.Context, orderNumber string) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderNumber]
	if !ok {
		return nil, ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memRepo) TransitionStatus(_ context.Context, orderNumber string, from, to Status, paymentRef string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderNumber]
	if !ok {
		return ErrOrderNotFound
	}
	if o.Status != from {
		return ErrStatusConflict
	}
	o.Status = to
	o.PaymentRef = &paymentRef
	m.transitions++
	return nil
}

func TestService_Confirm_ConcurrentCallbacks(t *testing.T) {
	repo := newMemRepo()
	calc := pricing.NewCalculator(pricing.ShippingRule{
		FreeAbove: decimal.NewFromInt(500),
		FlatFee:   decimal.NewFromInt(99),
	}, "INR")

	svc := NewService(
		repo,
		new(MockResolver),
		calc,
		new(MockGateway),
		payment.NewVerifier(testSecret),
		notify.NewPublisher(64),
		&metrics.Checkout{},
	)

	o := &Order{
		OrderNumber: "GNID1A2B3C4D5E-20260829",
		TotalAmount: decimal.RequireFromString("299.00"),
		Currency:    "INR",
	}
	require.NoError(t, repo.CreatePending(context.Background(), o))

	claim := validClaim()

	const callers = 8
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Confirm(context.Background(), claim)
		}(i)
	}
	wg.Wait()

	// Every delivery succeeds, but exactly one transition applied.
	for i, err := range errs {
		assert.NoError(t, err, "caller %d", i)
	}
	assert.Equal(t, 1, repo.transitions)

	final, err := repo.FindByOrderNumber(context.Background(), o.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, final.Status)
	require.NotNil(t, final.PaymentRef)
	assert.Equal(t, claim.PaymentID, *final.PaymentRef)
}
