package main

import (
	"context"
	"net/http"
	"os"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/markjakearzadon/profast-gobackend.git/internal/auth"
	"github.com/markjakearzadon/profast-gobackend.git/internal/config"
	"github.com/markjakearzadon/profast-gobackend.git/internal/db"
	"github.com/markjakearzadon/profast-gobackend.git/internal/handlers"
	"github.com/markjakearzadon/profast-gobackend.git/internal/middleware"
	"github.com/markjakearzadon/profast-gobackend.git/internal/services"
	"github.com/sirupsen/logrus"
)

// route declares one HTTP endpoint. The protected flag is the whole of the
// authorization policy: flagged routes are wrapped with token verification,
// everything else is reachable unauthenticated.
type route struct {
	method    string
	path      string
	handler   http.HandlerFunc
	protected bool
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logrus.WithError(err).Warn("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	ctx := context.Background()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logrus.WithError(err).Error("error disconnecting from MongoDB")
		}
	}()
	logrus.Info("connected to MongoDB")

	verifier, err := auth.NewFirebaseVerifier(ctx, cfg.FirebaseCredentials)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize firebase")
	}

	database := client.Database(cfg.DBName)

	userHandler := handlers.NewUserHandler(services.NewUserService(database))
	riderHandler := handlers.NewRiderHandler(services.NewRiderService(database))
	parcelHandler := handlers.NewParcelHandler(services.NewParcelService(database))
	paymentHandler := handlers.NewPaymentHandler(
		services.NewPaymentService(database),
		services.NewStripeService(cfg.StripeSecretKey),
	)

	routes := []route{
		{"POST", "/users", userHandler.CreateUser, false},
		{"GET", "/users/search", userHandler.SearchUsers, false},
		{"PATCH", "/users/{id}/make-admin", userHandler.MakeAdmin, false},

		{"POST", "/riders", riderHandler.CreateRider, false},
		{"GET", "/riders", riderHandler.GetRiders, false},
		{"PATCH", "/riders/{id}", riderHandler.UpdateRiderStatus, false},

		{"POST", "/parcels", parcelHandler.CreateParcel, false},
		{"GET", "/parcels", parcelHandler.GetParcels, true},
		{"GET", "/parcels/{id}", parcelHandler.GetParcel, false},
		{"DELETE", "/parcels/{id}", parcelHandler.DeleteParcel, false},

		{"POST", "/create-payment-intent", paymentHandler.CreatePaymentIntent, false},
		{"POST", "/payments", paymentHandler.RecordPayment, false},
		{"GET", "/payments", paymentHandler.GetPayments, false},
	}

	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Parcel Delivery Server Running!"))
	}).Methods("GET", "HEAD")

	for _, rt := range routes {
		var h http.Handler = rt.handler
		if rt.protected {
			h = middleware.VerifyToken(verifier, h)
		}
		router.Handle(rt.path, h).Methods(rt.method)
	}

	headersOk := ghandlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"})
	originsOk := ghandlers.AllowedOrigins([]string{"*"})
	methodsOk := ghandlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"})
	corsHandler := ghandlers.CORS(originsOk, headersOk, methodsOk)(router)
	finalHandler := ghandlers.LoggingHandler(os.Stdout, corsHandler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      finalHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logrus.Infof("server running on port %s", cfg.Port)
	logrus.Fatal(server.ListenAndServe())
}
