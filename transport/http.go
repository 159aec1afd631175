package transport

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	adminapp "github.com/muhammadheryan/car-showroom/application/admin"
	carapp "github.com/muhammadheryan/car-showroom/application/car"
	cartapp "github.com/muhammadheryan/car-showroom/application/cart"
	creditapp "github.com/muhammadheryan/car-showroom/application/credit"
	headerapp "github.com/muhammadheryan/car-showroom/application/header"
	orderapp "github.com/muhammadheryan/car-showroom/application/order"
	userapp "github.com/muhammadheryan/car-showroom/application/user"
	"github.com/muhammadheryan/car-showroom/cmd/config"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RestHandler struct {
	Config    *config.Config
	UserApp   userapp.UserApp
	HeaderApp headerapp.HeaderApp
	CarApp    carapp.CarApp
	CartApp   cartapp.CartApp
	OrderApp  orderapp.OrderApp
	CreditApp creditapp.CreditApp
	AdminApp  adminapp.AdminApp
}

func NewTransport(rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/", rh.Landing).Methods(http.MethodGet)
	mux.HandleFunc("/header", rh.Header).Methods(http.MethodGet)
	mux.HandleFunc("/cars/{car:[0-9]+}", rh.CarDetail).Methods(http.MethodGet)
	mux.HandleFunc("/register", rh.RegisterForm).Methods(http.MethodGet)
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.LoginForm).Methods(http.MethodGet)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/auth/{provider}/redirect", rh.OAuthRedirect).Methods(http.MethodGet)
	mux.HandleFunc("/auth/{provider}/callback", rh.OAuthCallback).Methods(http.MethodGet)

	// protected routes
	mux.Handle("/account/settings", RequireAuth(http.HandlerFunc(rh.AccountSettings))).Methods(http.MethodGet)
	mux.Handle("/account/profile/update", RequireAuth(http.HandlerFunc(rh.UpdateProfile))).Methods(http.MethodPut)
	mux.Handle("/account/password/update", RequireAuth(http.HandlerFunc(rh.UpdatePassword))).Methods(http.MethodPut)
	mux.Handle("/cart", RequireAuth(http.HandlerFunc(rh.Cart))).Methods(http.MethodGet)
	mux.Handle("/cart/{car:[0-9]+}", RequireAuth(http.HandlerFunc(rh.AddToCart))).Methods(http.MethodPost)
	mux.Handle("/cart/{car:[0-9]+}", RequireAuth(http.HandlerFunc(rh.RemoveFromCart))).Methods(http.MethodDelete)
	mux.Handle("/order/{car:[0-9]+}", RequireAuth(http.HandlerFunc(rh.OrderForm))).Methods(http.MethodGet)
	mux.Handle("/order/{car:[0-9]+}", RequireAuth(http.HandlerFunc(rh.Checkout))).Methods(http.MethodPost)
	mux.Handle("/transaction/{transaction:[0-9]+}", RequireAuth(http.HandlerFunc(rh.TransactionDetail))).Methods(http.MethodGet)
	mux.Handle("/credit/{car:[0-9]+}", RequireAuth(http.HandlerFunc(rh.ApplyCredit))).Methods(http.MethodPost)

	// admin routes
	admin := mux.PathPrefix("/admin").Subrouter()
	admin.Use(AdminMiddleware(rh.UserApp))
	admin.HandleFunc("/transactions", rh.AdminListTransactions).Methods(http.MethodGet)
	admin.HandleFunc("/transactions", rh.AdminCreateTransaction).Methods(http.MethodPost)
	admin.HandleFunc("/transactions/schema", rh.AdminTransactionSchema).Methods(http.MethodGet)
	admin.HandleFunc("/transactions/export", rh.AdminExportTransactions).Methods(http.MethodGet)
	admin.HandleFunc("/transactions/bulk-delete", rh.AdminBulkDeleteTransactions).Methods(http.MethodPost)
	admin.HandleFunc("/transactions/{id:[0-9]+}", rh.AdminGetTransaction).Methods(http.MethodGet)
	admin.HandleFunc("/transactions/{id:[0-9]+}", rh.AdminUpdateTransaction).Methods(http.MethodPut)
	admin.HandleFunc("/transactions/{id:[0-9]+}", rh.AdminDeleteTransaction).Methods(http.MethodDelete)
	admin.HandleFunc("/credit-applications", rh.AdminListCreditApplications).Methods(http.MethodGet)
	admin.HandleFunc("/credit-applications", rh.AdminCreateCreditApplication).Methods(http.MethodPost)
	admin.HandleFunc("/credit-applications/schema", rh.AdminCreditApplicationSchema).Methods(http.MethodGet)
	admin.HandleFunc("/credit-applications/export", rh.AdminExportCreditApplications).Methods(http.MethodGet)
	admin.HandleFunc("/credit-applications/bulk-delete", rh.AdminBulkDeleteCreditApplications).Methods(http.MethodPost)
	admin.HandleFunc("/credit-applications/{id:[0-9]+}", rh.AdminGetCreditApplication).Methods(http.MethodGet)
	admin.HandleFunc("/credit-applications/{id:[0-9]+}", rh.AdminUpdateCreditApplication).Methods(http.MethodPut)
	admin.HandleFunc("/credit-applications/{id:[0-9]+}", rh.AdminDeleteCreditApplication).Methods(http.MethodDelete)

	// internal routes, called by the expiration consumer
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(rh.Config.Internal.APIKey))
	internal.HandleFunc("/transaction/{id:[0-9]+}/cancel", rh.CancelExpiredTransaction).Methods(http.MethodPost)

	// middleware
	mux.Use(SessionMiddleware(rh.UserApp, rh.Config.Auth.CookieName))
	mux.Use(LoggingMiddleware())

	var h http.Handler = mux
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{}))(h)
	if len(rh.Config.Server.AllowOrigins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(rh.Config.Server.AllowOrigins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
			handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
			handlers.AllowCredentials(),
		)(h)
	}
	return h
}

// recoveryLogger reports recovered panics through the global logger.
type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	logger.Error("[RecoveryHandler] panic recovered", zap.Any("panic", v))
}
