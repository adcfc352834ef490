package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/carwash/pkg/api"
)

// CatalogServiceName is the fully-qualified name of the CatalogService service.
const CatalogServiceName = "carwash.v1.CatalogService"

// Procedure paths of CatalogService.
const (
	CatalogServiceListProductTypesProcedure = "/carwash.v1.CatalogService/ListProductTypes"
	CatalogServiceGetCatalogProcedure       = "/carwash.v1.CatalogService/GetCatalog"
	CatalogServiceNewBookingProcedure       = "/carwash.v1.CatalogService/NewBooking"
	CatalogServiceCalculatePricingProcedure = "/carwash.v1.CatalogService/CalculatePricing"
)

// CatalogServiceClient is a client for the carwash.v1.CatalogService service.
type CatalogServiceClient interface {
	ListProductTypes(context.Context, *connect.Request[api.ListProductTypesRequest]) (*connect.Response[api.ListProductTypesResponse], error)
	GetCatalog(context.Context, *connect.Request[api.GetCatalogRequest]) (*connect.Response[api.GetCatalogResponse], error)
	NewBooking(context.Context, *connect.Request[api.NewBookingRequest]) (*connect.Response[api.NewBookingResponse], error)
	CalculatePricing(context.Context, *connect.Request[api.CalculatePricingRequest]) (*connect.Response[api.CalculatePricingResponse], error)
}

// NewCatalogServiceClient constructs a client for the carwash.v1.CatalogService service.
// baseURL is the scheme and host of the server, e.g. http://localhost:8080.
func NewCatalogServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CatalogServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &catalogServiceClient{
		listProductTypes: connect.NewClient[api.ListProductTypesRequest, api.ListProductTypesResponse](
			httpClient, baseURL+CatalogServiceListProductTypesProcedure, opts...),
		getCatalog: connect.NewClient[api.GetCatalogRequest, api.GetCatalogResponse](
			httpClient, baseURL+CatalogServiceGetCatalogProcedure, opts...),
		newBooking: connect.NewClient[api.NewBookingRequest, api.NewBookingResponse](
			httpClient, baseURL+CatalogServiceNewBookingProcedure, opts...),
		calculatePricing: connect.NewClient[api.CalculatePricingRequest, api.CalculatePricingResponse](
			httpClient, baseURL+CatalogServiceCalculatePricingProcedure, opts...),
	}
}

type catalogServiceClient struct {
	listProductTypes *connect.Client[api.ListProductTypesRequest, api.ListProductTypesResponse]
	getCatalog       *connect.Client[api.GetCatalogRequest, api.GetCatalogResponse]
	newBooking       *connect.Client[api.NewBookingRequest, api.NewBookingResponse]
	calculatePricing *connect.Client[api.CalculatePricingRequest, api.CalculatePricingResponse]
}

func (c *catalogServiceClient) ListProductTypes(ctx context.Context, req *connect.Request[api.ListProductTypesRequest]) (*connect.Response[api.ListProductTypesResponse], error) {
	return c.listProductTypes.CallUnary(ctx, req)
}

func (c *catalogServiceClient) GetCatalog(ctx context.Context, req *connect.Request[api.GetCatalogRequest]) (*connect.Response[api.GetCatalogResponse], error) {
	return c.getCatalog.CallUnary(ctx, req)
}

func (c *catalogServiceClient) NewBooking(ctx context.Context, req *connect.Request[api.NewBookingRequest]) (*connect.Response[api.NewBookingResponse], error) {
	return c.newBooking.CallUnary(ctx, req)
}

func (c *catalogServiceClient) CalculatePricing(ctx context.Context, req *connect.Request[api.CalculatePricingRequest]) (*connect.Response[api.CalculatePricingResponse], error) {
	return c.calculatePricing.CallUnary(ctx, req)
}

// CatalogServiceHandler is an implementation of the carwash.v1.CatalogService service.
type CatalogServiceHandler interface {
	ListProductTypes(context.Context, *connect.Request[api.ListProductTypesRequest]) (*connect.Response[api.ListProductTypesResponse], error)
	GetCatalog(context.Context, *connect.Request[api.GetCatalogRequest]) (*connect.Response[api.GetCatalogResponse], error)
	NewBooking(context.Context, *connect.Request[api.NewBookingRequest]) (*connect.Response[api.NewBookingResponse], error)
	CalculatePricing(context.Context, *connect.Request[api.CalculatePricingRequest]) (*connect.Response[api.CalculatePricingResponse], error)
}

// NewCatalogServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewCatalogServiceHandler(svc CatalogServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	listProductTypes := connect.NewUnaryHandler(CatalogServiceListProductTypesProcedure, svc.ListProductTypes, opts...)
	getCatalog := connect.NewUnaryHandler(CatalogServiceGetCatalogProcedure, svc.GetCatalog, opts...)
	newBooking := connect.NewUnaryHandler(CatalogServiceNewBookingProcedure, svc.NewBooking, opts...)
	calculatePricing := connect.NewUnaryHandler(CatalogServiceCalculatePricingProcedure, svc.CalculatePricing, opts...)

	return "/" + CatalogServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CatalogServiceListProductTypesProcedure:
			listProductTypes.ServeHTTP(w, r)
		case CatalogServiceGetCatalogProcedure:
			getCatalog.ServeHTTP(w, r)
		case CatalogServiceNewBookingProcedure:
			newBooking.ServeHTTP(w, r)
		case CatalogServiceCalculatePricingProcedure:
			calculatePricing.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
