// internal/assistant/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"inventory-assistant/internal/assistant/assembler"
	"inventory-assistant/internal/assistant/classifier"
	"inventory-assistant/internal/assistant/extractor"
	"inventory-assistant/internal/assistant/renderer"
	"inventory-assistant/internal/assistant/validator"
	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/models"
	"inventory-assistant/internal/notify"
	"inventory-assistant/internal/oracle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==========================
// Fakes
// ==========================

type fakeStore struct {
	line     *models.ProductLine
	items    []models.ProductLine
	supplier *models.Supplier
	err      error
	panics   bool
}

func (s *fakeStore) StockByName(context.Context, string, string) (*models.ProductLine, error) {
	if s.panics {
		panic("store exploded")
	}
	return s.line, s.err
}

func (s *fakeStore) LowStock(context.Context, string) ([]models.ProductLine, error) {
	return s.items, s.err
}

func (s *fakeStore) DeadStock(context.Context, string) ([]models.ProductLine, error) {
	return s.items, s.err
}

func (s *fakeStore) ProductDetails(context.Context, string, string) (*models.ProductDetail, error) {
	return nil, s.err
}

func (s *fakeStore) ProductsByCategory(context.Context, string, string) ([]models.ProductLine, error) {
	return s.items, s.err
}

func (s *fakeStore) ProductsBySupplier(context.Context, string, string) ([]models.ProductLine, error) {
	return s.items, s.err
}

func (s *fakeStore) ExpiringProducts(context.Context, string, int) ([]models.ProductLine, error) {
	return s.items, s.err
}

func (s *fakeStore) OverstockedProducts(context.Context, string) ([]models.ProductLine, error) {
	return s.items, s.err
}

func (s *fakeStore) ProductPricing(context.Context, string, string) (*models.PriceRecord, error) {
	return nil, s.err
}

func (s *fakeStore) InventorySummary(context.Context, string) (*models.InventorySummary, error) {
	return nil, s.err
}

func (s *fakeStore) TopSellingProduct(context.Context, string) (*models.TopSeller, error) {
	return nil, s.err
}

func (s *fakeStore) SupplierByName(context.Context, string, string) (*models.Supplier, error) {
	return s.supplier, s.err
}

// failingOracle is down for every call.
type failingOracle struct{}

func (failingOracle) Complete(context.Context, oracle.Request) (string, error) {
	return "", errors.New("connection refused")
}

// MockNotifier records outbound demands.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) ChannelFor(s models.Supplier) notify.Channel {
	args := m.Called(s)
	return args.Get(0).(notify.Channel)
}

func (m *MockNotifier) NotifySupplierDemand(ctx context.Context, channel notify.Channel, name, product, quantity string) notify.Result {
	args := m.Called(ctx, channel, name, product, quantity)
	return args.Get(0).(notify.Result)
}

func createTestPipeline(t *testing.T, o oracle.Completer, store *fakeStore, notifier Notifier) *Pipeline {
	t.Helper()
	catalog, err := renderer.NewCatalog("en-US", renderer.DefaultProfiles()...)
	require.NoError(t, err)

	log := logger.NewTestLogger(t)
	stages := Stages{
		Classifier: classifier.New(o, log),
		Extractor:  extractor.New(o, log),
		Validator:  validator.New(store, log),
		Assembler:  assembler.New(store, log),
		Renderer:   renderer.New(catalog, o, log),
	}
	return New(stages, notifier, nil, log)
}

var languages = []string{"en-US", "hi-IN", "mr-IN", "ta-IN", "te-IN"}

var sampleMessages = []string{
	"rice stock",
	"low stock items",
	"dead stock",
	"overstocked products",
	"products expiring in 7 days",
	"price of rice",
	"details of rice",
	"grains category",
	"products from supplier Ram Traders",
	"inventory summary",
	"which is the best selling product",
	"order 10 kg rice",
	"order rice from Ram Traders",
	"hello",
	"help",
	"asdf qwerty",
	"चावल का स्टॉक",
	"तांदळाचा साठा किती आहे",
	"அரிசி ஸ்டாக்",
	"బియ్యం స్టాక్ ఎంత",
	"!!!",
	"12345",
	strings.Repeat("rice ", 200),
}

// ==========================
// Scenarios
// ==========================

func TestHandle_StockScenario(t *testing.T) {
	store := &fakeStore{line: &models.ProductLine{ProductName: "rice", CurrentStock: 40, Unit: "kg"}}
	p := createTestPipeline(t, nil, store, nil)

	resp := p.Handle(context.Background(), Request{Message: "rice stock", Language: "en-US", TenantID: "t1"})
	assert.Equal(t, "rice has 40 kg available.", resp.Reply)
}

func TestHandle_EmptyLowStockScenario(t *testing.T) {
	p := createTestPipeline(t, nil, &fakeStore{}, nil)

	resp := p.Handle(context.Background(), Request{Message: "low stock items", Language: "en-US"})
	assert.Equal(t, "No low stock items found.", resp.Reply)
}

func TestHandle_DemandWithoutSupplierAsksAndSendsNothing(t *testing.T) {
	notifier := new(MockNotifier)
	p := createTestPipeline(t, nil, &fakeStore{}, notifier)

	resp := p.Handle(context.Background(), Request{Message: "order 10 kg rice", Language: "en-US"})

	assert.Equal(t, "Which supplier should I send this order to?", resp.Reply)
	notifier.AssertNotCalled(t, "NotifySupplierDemand", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// ==========================
// Side Effects
// ==========================

func TestHandle_DemandSent(t *testing.T) {
	supplier := models.Supplier{ID: "s-1", Name: "Ram Traders", Email: "ram@example.com"}
	channel := notify.Channel{Kind: notify.ChannelEmail, Address: "ram@example.com"}

	notifier := new(MockNotifier)
	notifier.On("ChannelFor", supplier).Return(channel)
	notifier.On("NotifySupplierDemand", mock.Anything, channel, "Ram Traders", "rice", "10 kg").
		Return(notify.Result{OK: true, Channel: notify.ChannelEmail, MessageID: "m-1"}).Once()

	p := createTestPipeline(t, nil, &fakeStore{supplier: &supplier}, notifier)
	resp := p.Handle(context.Background(), Request{Message: "order 10 kg rice from Ram Traders", Language: "en-US"})

	assert.Equal(t, "Your request for 10 kg of rice has been sent to Ram Traders by email.", resp.Reply)
	notifier.AssertExpectations(t)
}

func TestHandle_DemandFailures(t *testing.T) {
	supplier := models.Supplier{ID: "s-1", Name: "Ram Traders", Phone: "+91999"}
	channel := notify.Channel{Kind: notify.ChannelSMS, Address: "+91999"}

	tests := []struct {
		name   string
		result notify.Result
		want   string
	}{
		{
			name:   "not configured",
			result: notify.Result{Reason: notify.ReasonNotConfigured, Channel: notify.ChannelSMS},
			want:   "Supplier notifications are not set up, so I couldn't contact Ram Traders.",
		},
		{
			name:   "send failed",
			result: notify.Result{Reason: notify.ReasonSendFailed, Channel: notify.ChannelSMS},
			want:   "I couldn't reach Ram Traders right now. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := new(MockNotifier)
			notifier.On("ChannelFor", supplier).Return(channel)
			notifier.On("NotifySupplierDemand", mock.Anything, channel, "Ram Traders", "rice", "10 kg").Return(tt.result).Once()

			p := createTestPipeline(t, nil, &fakeStore{supplier: &supplier}, notifier)
			resp := p.Handle(context.Background(), Request{Message: "order 10 kg rice from Ram Traders"})

			assert.Equal(t, tt.want, resp.Reply)
			notifier.AssertNumberOfCalls(t, "NotifySupplierDemand", 1)
		})
	}
}

func TestHandle_UnknownSupplierSendsNothing(t *testing.T) {
	notifier := new(MockNotifier)
	p := createTestPipeline(t, nil, &fakeStore{}, notifier)

	resp := p.Handle(context.Background(), Request{Message: "order 10 kg rice from Ram Traders"})

	assert.Contains(t, resp.Reply, "couldn't find contact details")
	notifier.AssertNotCalled(t, "ChannelFor", mock.Anything)
	notifier.AssertNotCalled(t, "NotifySupplierDemand", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_NoNotifierConfigured(t *testing.T) {
	supplier := models.Supplier{Name: "Ram Traders", Email: "ram@example.com"}
	p := createTestPipeline(t, nil, &fakeStore{supplier: &supplier}, nil)

	resp := p.Handle(context.Background(), Request{Message: "order 10 kg rice from Ram Traders"})
	assert.Equal(t, "Supplier notifications are not set up, so I couldn't contact Ram Traders.", resp.Reply)
}

func TestHandle_ReadOnlyIntentsNeverNotify(t *testing.T) {
	supplier := models.Supplier{Name: "Ram Traders", Email: "ram@example.com"}
	notifier := new(MockNotifier)
	p := createTestPipeline(t, nil, &fakeStore{supplier: &supplier}, notifier)

	for _, msg := range sampleMessages {
		if strings.HasPrefix(msg, "order") {
			continue
		}
		p.Handle(context.Background(), Request{Message: msg})
	}
	notifier.AssertNotCalled(t, "NotifySupplierDemand", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// ==========================
// Totality
// ==========================

func TestHandle_Totality(t *testing.T) {
	stores := map[string]*fakeStore{
		"empty":   {},
		"failing": {err: errors.New("db down")},
		"data": {
			line:  &models.ProductLine{ProductName: "rice", CurrentStock: 40, Unit: "kg"},
			items: []models.ProductLine{{ProductName: "rice", CurrentStock: 2, Unit: "kg"}},
		},
	}
	oracles := map[string]oracle.Completer{"none": nil, "failing": failingOracle{}}

	for storeName, store := range stores {
		for oracleName, o := range oracles {
			p := createTestPipeline(t, o, store, nil)
			for _, lang := range append(languages, "", "fr-FR", "hi") {
				for _, msg := range sampleMessages {
					resp := p.Handle(context.Background(), Request{Message: msg, Language: lang, TenantID: "t1"})
					assert.NotEmpty(t, strings.TrimSpace(resp.Reply),
						"store=%s oracle=%s lang=%q msg=%q", storeName, oracleName, lang, msg)
				}
			}
		}
	}
}

func TestHandle_FailingOracleMatchesFallback(t *testing.T) {
	store := &fakeStore{line: &models.ProductLine{ProductName: "rice", CurrentStock: 40, Unit: "kg"}}
	withoutOracle := createTestPipeline(t, nil, store, nil)
	withFailing := createTestPipeline(t, failingOracle{}, store, nil)

	for _, lang := range languages {
		for _, msg := range sampleMessages {
			req := Request{Message: msg, Language: lang}
			assert.Equal(t,
				withoutOracle.Handle(context.Background(), req).Reply,
				withFailing.Handle(context.Background(), req).Reply,
				"lang=%s msg=%q", lang, msg)
		}
	}
}

func TestHandle_EmptyMessage(t *testing.T) {
	p := createTestPipeline(t, nil, &fakeStore{panics: true}, nil)

	assert.Equal(t, "Please type a question about your inventory.", p.Handle(context.Background(), Request{Message: "   "}).Reply)
	hindi := p.Handle(context.Background(), Request{Message: "", Language: "hi-IN"}).Reply
	assert.NotEmpty(t, hindi)
	assert.NotEqual(t, "Please type a question about your inventory.", hindi)
}

func TestHandle_PanicBecomesLocalizedFailure(t *testing.T) {
	p := createTestPipeline(t, nil, &fakeStore{panics: true}, nil)

	resp := p.Handle(context.Background(), Request{Message: "rice stock", Language: "en-US"})
	assert.Equal(t, "Sorry, I couldn't process that request.", resp.Reply)

	resp = p.Handle(context.Background(), Request{Message: "rice stock", Language: "ta-IN"})
	assert.Equal(t, p.Renderer().Message("ta-IN", renderer.MessageFailure), resp.Reply)
}

func TestHandle_LanguageFallsBackToDefault(t *testing.T) {
	store := &fakeStore{line: &models.ProductLine{ProductName: "rice", CurrentStock: 40, Unit: "kg"}}
	p := createTestPipeline(t, nil, store, nil)

	for _, lang := range []string{"", "fr-FR", "EN-us"} {
		resp := p.Handle(context.Background(), Request{Message: "rice stock", Language: lang})
		assert.Equal(t, "rice has 40 kg available.", resp.Reply, "lang=%q", lang)
	}
}
