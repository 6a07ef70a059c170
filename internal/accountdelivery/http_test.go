package accountdelivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pay-engine/internal/domain"
	"github.com/go-petr/pay-engine/pkg/amountpkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*gin.Engine, *MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := NewHandler(service)

	engine := gin.New()
	engine.GET("/accounts", handler.List)
	engine.GET("/accounts/:id", handler.Get)

	return engine, service
}

func testBalance(t *testing.T, client domain.ClientID) domain.Balance {
	t.Helper()

	return domain.Balance{
		Client:    client,
		Available: amount(t, "1.5"),
		Held:      amount(t, "1.0"),
		Total:     amount(t, "2.5"),
	}
}

func TestList(t *testing.T) {
	engine, service := newTestServer(t)

	balances := []domain.Balance{testBalance(t, 7), testBalance(t, 8)}
	service.EXPECT().Snapshot(gomock.Any()).Times(1).Return(balances)

	recorder := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/accounts", nil)
	require.NoError(t, err)

	engine.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var res struct {
		Data struct {
			Balances []domain.Balance `json:"balances"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

	if diff := cmp.Diff(balances, res.Data.Balances, cmp.AllowUnexported(amountpkg.Amount{})); diff != "" {
		t.Errorf("balances mismatch (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	balance := testBalance(t, 7)

	testCases := []struct {
		name           string
		url            string
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			url:  "/accounts/7",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(domain.ClientID(7))).
					Times(1).
					Return(balance, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "ClientIDZero",
			url:  "/accounts/0",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(domain.ClientID(0))).
					Times(1).
					Return(domain.Balance{Client: 0}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "NotFound",
			url:  "/accounts/9",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(domain.ClientID(9))).
					Times(1).
					Return(domain.Balance{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "InvalidID",
			url:  "/accounts/abc",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "IDOutOfRange",
			url:  "/accounts/70000",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine, service := newTestServer(t)
			tc.buildStubs(service)

			recorder := httptest.NewRecorder()
			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			engine.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantStatusCode != http.StatusOK {
				return
			}

			var res struct {
				Data struct {
					Balance domain.Balance `json:"balance"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

			if tc.name == "OK" {
				if diff := cmp.Diff(balance, res.Data.Balance, cmp.AllowUnexported(amountpkg.Amount{})); diff != "" {
					t.Errorf("balance mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
