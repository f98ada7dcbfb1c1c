package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/MarcGrol/shopfront/lib/myconfig"
	"github.com/MarcGrol/shopfront/lib/myevents"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/lib/mylocalstore"
	"github.com/MarcGrol/shopfront/lib/mymetrics"
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/mypubsub"
	"github.com/MarcGrol/shopfront/lib/myqueue"
	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/lib/myvault"
	"github.com/MarcGrol/shopfront/services/cart"
	"github.com/MarcGrol/shopfront/services/catalog"
	"github.com/MarcGrol/shopfront/services/checkoutrazorpay"
	"github.com/MarcGrol/shopfront/services/orderhistory"
	"github.com/MarcGrol/shopfront/services/roles"
	"github.com/MarcGrol/shopfront/services/warmup"
	"github.com/MarcGrol/shopfront/services/wishlist"
)

func main() {
	c := context.Background()

	// prices and totals are plain JSON numbers for the storefront
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := myconfig.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %s", err)
	}

	router := mux.NewRouter()
	router.Use(myhttp.CORS())

	nower := mytime.RealNower{}
	metrics := mymetrics.New()
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	entryStore, entryStoreCleanup, err := mystore.New[mylocalstore.Entry](c)
	if err != nil {
		log.Fatalf("Error creating state store: %s", err)
	}
	defer entryStoreCleanup()
	localStore := mylocalstore.New(entryStore, nower)

	secretStore, secretStoreCleanup, err := mystore.New[myvault.Secret](c)
	if err != nil {
		log.Fatalf("Error creating secret store: %s", err)
	}
	defer secretStoreCleanup()
	vault := myvault.New(secretStore)

	publisher, pubsub, publisherCleanup, err := createPublisher(c, nower)
	if err != nil {
		log.Fatalf("Error creating event publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	checkoutrazorpay.NewWebService(vault, checkoutrazorpay.NewPayer(), myuuid.RealUUIDer{}, metrics).RegisterEndpoints(c, router)

	catalogService := catalog.NewService()
	catalog.NewWebService(catalogService).RegisterEndpoints(c, router)

	cart.NewWebService(cart.NewService(localStore), catalogService).RegisterEndpoints(c, router)

	wishlist.NewWebService(wishlist.NewService(localStore), catalogService).RegisterEndpoints(c, router)

	rolesService := roles.NewService(localStore)
	roles.NewWebService(rolesService).RegisterEndpoints(c, router)

	orderService := orderhistory.NewService(localStore, publisher, pubsub, metrics, nower, cfg.PublicBaseURL)
	err = orderhistory.NewWebService(orderService, rolesService).RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering order endpoints: %s", err)
	}

	warmup.NewService(vault).RegisterEndpoints(c, router)

	// Lets the CORS middleware answer preflight requests for every route
	router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(myhttp.Preflight)

	startWebServerBlocking(cfg, router)
}

func createPublisher(c context.Context, nower mytime.Nower) (*mypublisher.TransactionalPublisher, mypubsub.PubSub, func(), error) {
	outbox, outboxCleanup, err := mystore.New[myevents.EventEnvelope](c)
	if err != nil {
		return nil, nil, func() {}, err
	}

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		outboxCleanup()
		return nil, nil, func() {}, err
	}

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		outboxCleanup()
		pubsubCleanup()
		return nil, nil, func() {}, err
	}

	return mypublisher.New(outbox, pubsub, queue, nower), pubsub, func() {
		queueCleanup()
		pubsubCleanup()
		outboxCleanup()
	}, nil
}

func startWebServerBlocking(cfg myconfig.Config, router *mux.Router) {
	log.Printf("Starting webserver on %s (try http://localhost%s)", cfg.HTTPAddr(), cfg.HTTPAddr())
	err := http.ListenAndServe(cfg.HTTPAddr(), router)
	if err != nil {
		log.Fatalf("Error starting webserver on %s: %s", cfg.HTTPAddr(), err)
	}
}
