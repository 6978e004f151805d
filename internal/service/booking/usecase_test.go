package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"freight-booking/internal/apperr"
	"freight-booking/internal/config"
	"freight-booking/internal/domain"
	"freight-booking/internal/metrics"
	"freight-booking/internal/ports/bookingtx"
	testlog "freight-booking/internal/testutil"
)

func newCtrl(t *testing.T) *gomock.Controller {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return ctrl
}

type stubTx struct {
	insertFn func(context.Context, *domain.Shipment) error
	getFn    func(context.Context, int64) (*domain.Shipment, error)
	claimFn  func(context.Context) (*domain.Driver, error)
	updFn    func(context.Context, int64, domain.ShipmentStatus, *int64) error
}

func (s *stubTx) InsertShipment(ctx context.Context, sh *domain.Shipment) error {
	if s.insertFn == nil {
		return nil
	}
	return s.insertFn(ctx, sh)
}
func (s *stubTx) GetShipmentForUpdate(ctx context.Context, id int64) (*domain.Shipment, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}
func (s *stubTx) ClaimAvailableDriver(ctx context.Context) (*domain.Driver, error) {
	if s.claimFn == nil {
		return nil, nil
	}
	return s.claimFn(ctx)
}
func (s *stubTx) UpdateShipmentStatus(ctx context.Context, id int64, st domain.ShipmentStatus, driverID *int64) error {
	if s.updFn == nil {
		return nil
	}
	return s.updFn(ctx, id, st, driverID)
}

type deps struct {
	repo     *MockbookingRepository
	payments *MockpaymentGateway
	notifier *Mocknotifier
	metrics  *metrics.Booking
	logs     *testlog.Recorder
}

func newTestService(t *testing.T, mutate ...func(*Settings)) (*Service, deps) {
	t.Helper()
	ctrl := newCtrl(t)
	d := deps{
		repo:     NewMockbookingRepository(ctrl),
		payments: NewMockpaymentGateway(ctrl),
		notifier: NewMocknotifier(ctrl),
		metrics:  metrics.NewBooking(),
		logs:     testlog.New(),
	}
	settings := Settings{
		DefaultPhone:     "0780000000",
		ExportEmail:      "exporter@example.com",
		OperationTimeout: time.Second,
		PaymentTimeout:   time.Second,
		NotifyTimeout:    time.Second,
	}
	for _, m := range mutate {
		m(&settings)
	}
	tariff := NewTariff(config.Tariff{DomesticRate: 1000, InternationalRate: 3000})
	svc := NewService(d.repo, d.payments, d.notifier, tariff, settings, d.metrics, d.logs.Logger())
	return svc, d
}

func expectTx(repo *MockbookingRepository, tx *stubTx) {
	repo.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(bookingtx.Repository) error) error {
			return fn(tx)
		})
}

func ptr[T any](v T) *T { return &v }

func TestNewService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, nil, nil, nil, Settings{}, nil, nil)
	require.Equal(t, 3*time.Second, svc.settings.OperationTimeout)
	require.Equal(t, 5*time.Second, svc.settings.PaymentTimeout)
	require.Equal(t, 2*time.Second, svc.settings.NotifyTimeout)
	require.NotNil(t, svc.metrics)
	require.NotNil(t, svc.logger)
}

func TestService_CreateShipment_Success(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	expectTx(d.repo, &stubTx{
		insertFn: func(_ context.Context, sh *domain.Shipment) error {
			require.Equal(t, domain.TypeDomestic, sh.Type)
			require.Equal(t, 2.0, sh.Weight)
			require.Equal(t, int64(2000), sh.Tariff)
			require.Equal(t, domain.StatusPendingPayment, sh.Status)
			sh.ID = 7
			return nil
		},
	})
	resp := domain.PaymentResponse{Status: "pending", TransactionID: "MOCK-7", Message: "Payment prompt sent to user."}
	d.payments.EXPECT().InitiatePayment(gomock.Any(), int64(2000), "0781234567", "7").Return(resp, nil)

	res, err := svc.CreateShipment(context.Background(), domain.CreateShipmentInput{
		Type:   "domestic",
		Weight: ptr(2.0),
		Phone:  "0781234567",
	})

	require.NoError(t, err)
	require.Equal(t, domain.CreateShipmentResult{
		Status:     domain.StatusPendingPayment,
		ShipmentID: 7,
		Tariff:     2000,
		Payment:    resp,
	}, res)
	require.Equal(t, 1.0, testutil.ToFloat64(d.metrics.ShipmentsCreated))
	require.True(t, d.logs.Has("info", "shipment created"))
}

func TestService_CreateShipment_Defaults(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	expectTx(d.repo, &stubTx{
		insertFn: func(_ context.Context, sh *domain.Shipment) error {
			require.Equal(t, domain.TypeDomestic, sh.Type)
			require.Equal(t, 1.0, sh.Weight)
			require.Equal(t, "0780000000", sh.Phone)
			sh.ID = 1
			return nil
		},
	})
	d.payments.EXPECT().InitiatePayment(gomock.Any(), int64(1000), "0780000000", "1").Return(domain.PaymentResponse{}, nil)

	res, err := svc.CreateShipment(context.Background(), domain.CreateShipmentInput{Type: "air-freight"})
	require.NoError(t, err)
	require.Equal(t, int64(1000), res.Tariff)
}

func TestService_CreateShipment_International(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	expectTx(d.repo, &stubTx{
		insertFn: func(_ context.Context, sh *domain.Shipment) error { sh.ID = 3; return nil },
	})
	d.payments.EXPECT().InitiatePayment(gomock.Any(), int64(4500), "+250781234567", "3").Return(domain.PaymentResponse{}, nil)

	res, err := svc.CreateShipment(context.Background(), domain.CreateShipmentInput{
		Type:   "international",
		Weight: ptr(1.5),
		Phone:  "+250781234567",
	})
	require.NoError(t, err)
	require.Equal(t, int64(4500), res.Tariff)
}

func TestService_CreateShipment_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       domain.CreateShipmentInput
		settings func(*Settings)
	}{
		{name: "zero weight", in: domain.CreateShipmentInput{Weight: ptr(0.0)}},
		{name: "negative weight", in: domain.CreateShipmentInput{Weight: ptr(-1.0)}},
		{name: "nan weight", in: domain.CreateShipmentInput{Weight: ptr(math.NaN())}},
		{name: "inf weight", in: domain.CreateShipmentInput{Weight: ptr(math.Inf(1))}},
		{name: "malformed phone", in: domain.CreateShipmentInput{Phone: "call me"}},
		{
			name:     "phone required",
			in:       domain.CreateShipmentInput{},
			settings: func(s *Settings) { s.RequirePhone = true },
		},
		{
			name:     "no placeholder",
			in:       domain.CreateShipmentInput{},
			settings: func(s *Settings) { s.DefaultPhone = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var mutate []func(*Settings)
			if tt.settings != nil {
				mutate = append(mutate, tt.settings)
			}
			svc, _ := newTestService(t, mutate...)

			_, err := svc.CreateShipment(context.Background(), tt.in)
			require.ErrorIs(t, err, apperr.ErrInvalid)
		})
	}
}

func TestService_CreateShipment_StoreError(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	boom := errors.New("db down")
	d.repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(boom)

	res, err := svc.CreateShipment(context.Background(), domain.CreateShipmentInput{})
	require.ErrorIs(t, err, boom)
	require.Zero(t, res.ShipmentID)
	require.Zero(t, testutil.ToFloat64(d.metrics.ShipmentsCreated))
}

func TestService_CreateShipment_GatewayFailureKeepsShipment(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	expectTx(d.repo, &stubTx{
		insertFn: func(_ context.Context, sh *domain.Shipment) error { sh.ID = 11; return nil },
	})
	gwErr := errors.New("momo unavailable")
	d.payments.EXPECT().InitiatePayment(gomock.Any(), gomock.Any(), gomock.Any(), "11").Return(domain.PaymentResponse{}, gwErr)

	res, err := svc.CreateShipment(context.Background(), domain.CreateShipmentInput{Phone: "0781234567"})

	require.ErrorIs(t, err, apperr.ErrGateway)
	require.ErrorIs(t, err, gwErr)
	require.Equal(t, int64(11), res.ShipmentID)
	require.Equal(t, int64(1000), res.Tariff)
	require.Equal(t, domain.StatusPendingPayment, res.Status)
	require.Equal(t, 1.0, testutil.ToFloat64(d.metrics.PaymentRequestsFailed))
	require.True(t, d.logs.Has("error", "payment request failed"))
}

func TestService_CreateShipment_PaymentDeadline(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t, func(s *Settings) { s.PaymentTimeout = 20 * time.Millisecond })
	expectTx(d.repo, &stubTx{
		insertFn: func(_ context.Context, sh *domain.Shipment) error { sh.ID = 5; return nil },
	})
	d.payments.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, _, _ string) (domain.PaymentResponse, error) {
			<-ctx.Done()
			return domain.PaymentResponse{}, ctx.Err()
		})

	res, err := svc.CreateShipment(context.Background(), domain.CreateShipmentInput{})
	require.ErrorIs(t, err, apperr.ErrGateway)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, int64(5), res.ShipmentID)
}

func TestService_RetryPayment(t *testing.T) {
	t.Parallel()

	t.Run("pending shipment", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestService(t)
		d.repo.EXPECT().GetShipment(gomock.Any(), int64(4)).Return(&domain.Shipment{
			ID: 4, Tariff: 3000, Phone: "0781234567", Status: domain.StatusPendingPayment,
		}, nil)
		d.payments.EXPECT().InitiatePayment(gomock.Any(), int64(3000), "0781234567", "4").
			Return(domain.PaymentResponse{Status: "pending", TransactionID: "MOCK-4"}, nil)

		res, err := svc.RetryPayment(context.Background(), 4)
		require.NoError(t, err)
		require.Equal(t, "MOCK-4", res.Payment.TransactionID)
	})

	t.Run("unknown shipment", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestService(t)
		d.repo.EXPECT().GetShipment(gomock.Any(), int64(4)).Return(nil, nil)

		_, err := svc.RetryPayment(context.Background(), 4)
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("already resolved", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestService(t)
		d.repo.EXPECT().GetShipment(gomock.Any(), int64(4)).Return(&domain.Shipment{
			ID: 4, Status: domain.StatusConfirmed,
		}, nil)

		_, err := svc.RetryPayment(context.Background(), 4)
		require.ErrorIs(t, err, apperr.ErrConflict)
	})
}

func TestService_GetShipment(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)

	_, err := svc.GetShipment(context.Background(), 0)
	require.ErrorIs(t, err, apperr.ErrInvalid)

	want := &domain.Shipment{ID: 2, Status: domain.StatusConfirmed}
	d.repo.EXPECT().GetShipment(gomock.Any(), int64(2)).Return(want, nil)
	got, err := svc.GetShipment(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, want, got)

	boom := errors.New("db down")
	d.repo.EXPECT().GetShipment(gomock.Any(), int64(3)).Return(nil, boom)
	_, err = svc.GetShipment(context.Background(), 3)
	require.ErrorIs(t, err, boom)
}

func TestService_HandlePaymentCallback_BadTransactionID(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)

	res, err := svc.HandlePaymentCallback(context.Background(), domain.PaymentCallback{TransactionID: "PAY-1", Status: "success"})
	require.NoError(t, err)
	require.False(t, res.Applied)
	require.True(t, d.logs.Has("warn", "payment callback ignored"))
	require.Equal(t, 1.0, testutil.ToFloat64(d.metrics.Callbacks.WithLabelValues(metrics.OutcomeUnknown)))
}

func TestService_HandlePaymentCallback_UnknownShipment(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	expectTx(d.repo, &stubTx{
		getFn: func(_ context.Context, id int64) (*domain.Shipment, error) {
			require.Equal(t, int64(99), id)
			return nil, nil
		},
		updFn: func(context.Context, int64, domain.ShipmentStatus, *int64) error {
			t.Fatal("unexpected status update")
			return nil
		},
	})

	res, err := svc.HandlePaymentCallback(context.Background(), domain.PaymentCallback{TransactionID: "MOCK-99", Status: "success"})
	require.NoError(t, err)
	require.False(t, res.Applied)
	require.Equal(t, int64(99), res.ShipmentID)

	entry, ok := d.logs.Find("payment callback ignored")
	require.True(t, ok)
	reason, _ := entry.Field("reason")
	require.Equal(t, "unknown_shipment", reason)
}

func TestService_HandlePaymentCallback_ConfirmedWithDriver(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	driver := &domain.Driver{ID: 21, Name: "Jean Bosco"}
	expectTx(d.repo, &stubTx{
		getFn: func(context.Context, int64) (*domain.Shipment, error) {
			return &domain.Shipment{ID: 7, Phone: "0781234567", Email: "client@example.com", Status: domain.StatusPendingPayment}, nil
		},
		claimFn: func(context.Context) (*domain.Driver, error) { return driver, nil },
		updFn: func(_ context.Context, id int64, st domain.ShipmentStatus, driverID *int64) error {
			require.Equal(t, int64(7), id)
			require.Equal(t, domain.StatusConfirmed, st)
			require.NotNil(t, driverID)
			require.Equal(t, int64(21), *driverID)
			return nil
		},
	})
	d.notifier.EXPECT().
		SendSMS(gomock.Any(), "0781234567", "Your shipment 7 is confirmed. Driver: Jean Bosco").
		Return(nil)
	d.notifier.EXPECT().
		SendEmail(gomock.Any(), "client@example.com", "Shipment Confirmed", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, body string) error {
			require.Contains(t, body, "Jean Bosco")
			return nil
		})

	res, err := svc.HandlePaymentCallback(context.Background(), domain.PaymentCallback{TransactionID: "MOCK-7", Status: "success"})
	require.NoError(t, err)
	require.True(t, res.Applied)
	require.Equal(t, domain.StatusConfirmed, res.Status)
	require.Equal(t, "Jean Bosco", res.DriverName)
	require.Equal(t, int64(21), *res.DriverID)
	require.Equal(t, 1.0, testutil.ToFloat64(d.metrics.Callbacks.WithLabelValues(metrics.OutcomeConfirmed)))
}

func TestService_HandlePaymentCallback_NoDriver(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	expectTx(d.repo, &stubTx{
		getFn: func(context.Context, int64) (*domain.Shipment, error) {
			return &domain.Shipment{ID: 8, Phone: "0781234567", Status: domain.StatusPendingPayment}, nil
		},
		updFn: func(_ context.Context, _ int64, st domain.ShipmentStatus, driverID *int64) error {
			require.Equal(t, domain.StatusConfirmedNoDriver, st)
			require.Nil(t, driverID)
			return nil
		},
	})
	d.notifier.EXPECT().SendSMS(gomock.Any(), "0781234567", gomock.Any()).Return(nil)
	d.notifier.EXPECT().SendEmail(gomock.Any(), "exporter@example.com", "Shipment Confirmed", gomock.Any()).Return(nil)

	res, err := svc.HandlePaymentCallback(context.Background(), domain.PaymentCallback{TransactionID: "MOCK-8", Status: "SUCCESS"})
	require.NoError(t, err)
	require.True(t, res.Applied)
	require.Equal(t, domain.StatusConfirmedNoDriver, res.Status)
	require.Nil(t, res.DriverID)
}

func TestService_HandlePaymentCallback_PaymentFailed(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	expectTx(d.repo, &stubTx{
		getFn: func(context.Context, int64) (*domain.Shipment, error) {
			return &domain.Shipment{ID: 9, Phone: "0781234567", Status: domain.StatusPendingPayment}, nil
		},
		claimFn: func(context.Context) (*domain.Driver, error) {
			t.Fatal("driver must not be claimed for a failed payment")
			return nil, nil
		},
		updFn: func(_ context.Context, _ int64, st domain.ShipmentStatus, _ *int64) error {
			require.Equal(t, domain.StatusPaymentFailed, st)
			return nil
		},
	})
	d.notifier.EXPECT().
		SendSMS(gomock.Any(), "0781234567", "Payment failed for shipment 9. Please try again.").
		Return(nil)

	res, err := svc.HandlePaymentCallback(context.Background(), domain.PaymentCallback{TransactionID: "MOCK-9", Status: "failed"})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPaymentFailed, res.Status)
}

func TestService_HandlePaymentCallback_TerminalIsNoop(t *testing.T) {
	t.Parallel()

	for _, st := range []domain.ShipmentStatus{domain.StatusConfirmed, domain.StatusConfirmedNoDriver, domain.StatusPaymentFailed} {
		t.Run(string(st), func(t *testing.T) {
			t.Parallel()
			svc, d := newTestService(t)
			expectTx(d.repo, &stubTx{
				getFn: func(context.Context, int64) (*domain.Shipment, error) {
					return &domain.Shipment{ID: 5, Status: st, DriverID: ptr(int64(3))}, nil
				},
				claimFn: func(context.Context) (*domain.Driver, error) {
					t.Fatal("unexpected driver claim")
					return nil, nil
				},
				updFn: func(context.Context, int64, domain.ShipmentStatus, *int64) error {
					t.Fatal("unexpected status update")
					return nil
				},
			})

			res, err := svc.HandlePaymentCallback(context.Background(), domain.PaymentCallback{TransactionID: "MOCK-5", Status: "success"})
			require.NoError(t, err)
			require.False(t, res.Applied)
			require.Equal(t, st, res.Status)
			require.Equal(t, 1.0, testutil.ToFloat64(d.metrics.Callbacks.WithLabelValues(metrics.OutcomeDuplicate)))
		})
	}
}

func TestService_HandlePaymentCallback_LostRaceIsNoop(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	expectTx(d.repo, &stubTx{
		getFn: func(context.Context, int64) (*domain.Shipment, error) {
			return &domain.Shipment{ID: 5, Status: domain.StatusPendingPayment}, nil
		},
		updFn: func(context.Context, int64, domain.ShipmentStatus, *int64) error {
			return fmt.Errorf("update shipment 5: %w", apperr.ErrConflict)
		},
	})
	d.repo.EXPECT().GetShipment(gomock.Any(), int64(5)).Return(&domain.Shipment{
		ID: 5, Status: domain.StatusConfirmed, DriverID: ptr(int64(9)),
	}, nil)

	res, err := svc.HandlePaymentCallback(context.Background(), domain.PaymentCallback{TransactionID: "MOCK-5", Status: "success"})
	require.NoError(t, err)
	require.False(t, res.Applied)
	require.Equal(t, domain.StatusConfirmed, res.Status)
	require.Equal(t, ptr(int64(9)), res.DriverID)
	require.Equal(t, 1.0, testutil.ToFloat64(d.metrics.Callbacks.WithLabelValues(metrics.OutcomeDuplicate)))
}

func TestService_HandlePaymentCallback_StoreError(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	boom := errors.New("db down")
	expectTx(d.repo, &stubTx{
		getFn: func(context.Context, int64) (*domain.Shipment, error) {
			return &domain.Shipment{ID: 5, Status: domain.StatusPendingPayment}, nil
		},
		claimFn: func(context.Context) (*domain.Driver, error) { return nil, boom },
	})

	_, err := svc.HandlePaymentCallback(context.Background(), domain.PaymentCallback{TransactionID: "MOCK-5", Status: "success"})
	require.ErrorIs(t, err, boom)
}

func TestService_HandlePaymentCallback_NotificationFailuresAreSwallowed(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	expectTx(d.repo, &stubTx{
		getFn: func(context.Context, int64) (*domain.Shipment, error) {
			return &domain.Shipment{ID: 6, Phone: "0781234567", Status: domain.StatusPendingPayment}, nil
		},
		claimFn: func(context.Context) (*domain.Driver, error) { return &domain.Driver{ID: 1, Name: "Alice"}, nil },
	})
	d.notifier.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("sms down"))
	d.notifier.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	res, err := svc.HandlePaymentCallback(context.Background(), domain.PaymentCallback{TransactionID: "MOCK-6", Status: "success"})
	require.NoError(t, err)
	require.Equal(t, domain.StatusConfirmed, res.Status)
	require.Equal(t, 2.0, testutil.ToFloat64(d.metrics.NotificationsFailed))
	require.True(t, d.logs.Has("warn", "sms notification failed"))
	require.True(t, d.logs.Has("warn", "email notification failed"))
}

func TestService_HandlePaymentCallback_NotifyOutlivesCanceledRequest(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	expectTx(d.repo, &stubTx{
		getFn: func(context.Context, int64) (*domain.Shipment, error) {
			return &domain.Shipment{ID: 6, Phone: "0781234567", Status: domain.StatusPendingPayment}, nil
		},
	})
	ctx, cancel := context.WithCancel(context.Background())
	d.notifier.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string) error {
			cancel()
			return ctx.Err()
		})

	res, err := svc.HandlePaymentCallback(ctx, domain.PaymentCallback{TransactionID: "MOCK-6", Status: "declined"})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPaymentFailed, res.Status)
	require.Zero(t, testutil.ToFloat64(d.metrics.NotificationsFailed))
}

func TestTariff_Quote(t *testing.T) {
	t.Parallel()

	tariff := NewTariff(config.Tariff{DomesticRate: 1000, InternationalRate: 3000})
	tests := []struct {
		typ    domain.ShipmentType
		weight float64
		want   int64
	}{
		{domain.TypeDomestic, 1, 1000},
		{domain.TypeDomestic, 2, 2000},
		{domain.TypeDomestic, 0.25, 250},
		{domain.TypeInternational, 0.3333, 1000},
		{domain.TypeInternational, 2.5, 7500},
	}
	for _, tt := range tests {
		got, err := tariff.Quote(tt.typ, tt.weight)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "%s x %v", tt.typ, tt.weight)
	}

	_, err := tariff.Quote(domain.ShipmentType("sea"), 1)
	require.Error(t, err)

	_, err = tariff.Quote(domain.TypeDomestic, math.MaxFloat64)
	require.Error(t, err)

	// 1000 x 2^63/1000 rounds to exactly 2^63.
	_, err = tariff.Quote(domain.TypeDomestic, math.Ldexp(1, 63)/1000)
	require.Error(t, err)

	got, err := tariff.Quote(domain.TypeDomestic, math.Ldexp(1, 52)/1000)
	require.NoError(t, err)
	require.Positive(t, got)
}

func TestSettings_ExportEmailFallbackOnlyWhenShipmentHasNone(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t, func(s *Settings) { s.ExportEmail = "" })
	expectTx(d.repo, &stubTx{
		getFn: func(context.Context, int64) (*domain.Shipment, error) {
			return &domain.Shipment{ID: 1, Phone: "0781234567", Status: domain.StatusPendingPayment}, nil
		},
	})
	d.notifier.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, msg string) error {
			require.True(t, strings.HasPrefix(msg, "Your shipment 1 is confirmed"))
			return nil
		})

	_, err := svc.HandlePaymentCallback(context.Background(), domain.PaymentCallback{TransactionID: "MOCK-1", Status: "success"})
	require.NoError(t, err)
}
