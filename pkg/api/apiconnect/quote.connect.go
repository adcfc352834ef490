package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/carwash/pkg/api"
)

// QuoteServiceName is the fully-qualified name of the QuoteService service.
const QuoteServiceName = "carwash.v1.QuoteService"

// Procedure paths of QuoteService.
const (
	QuoteServiceSubmitQuoteProcedure = "/carwash.v1.QuoteService/SubmitQuote"
	QuoteServiceGetQuoteProcedure    = "/carwash.v1.QuoteService/GetQuote"
	QuoteServiceListQuotesProcedure  = "/carwash.v1.QuoteService/ListQuotes"
)

// QuoteServiceClient is a client for the carwash.v1.QuoteService service.
type QuoteServiceClient interface {
	SubmitQuote(context.Context, *connect.Request[api.SubmitQuoteRequest]) (*connect.Response[api.SubmitQuoteResponse], error)
	GetQuote(context.Context, *connect.Request[api.GetQuoteRequest]) (*connect.Response[api.GetQuoteResponse], error)
	ListQuotes(context.Context, *connect.Request[api.ListQuotesRequest]) (*connect.Response[api.ListQuotesResponse], error)
}

// NewQuoteServiceClient constructs a client for the carwash.v1.QuoteService service.
func NewQuoteServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) QuoteServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &quoteServiceClient{
		submitQuote: connect.NewClient[api.SubmitQuoteRequest, api.SubmitQuoteResponse](
			httpClient, baseURL+QuoteServiceSubmitQuoteProcedure, opts...),
		getQuote: connect.NewClient[api.GetQuoteRequest, api.GetQuoteResponse](
			httpClient, baseURL+QuoteServiceGetQuoteProcedure, opts...),
		listQuotes: connect.NewClient[api.ListQuotesRequest, api.ListQuotesResponse](
			httpClient, baseURL+QuoteServiceListQuotesProcedure, opts...),
	}
}

type quoteServiceClient struct {
	submitQuote *connect.Client[api.SubmitQuoteRequest, api.SubmitQuoteResponse]
	getQuote    *connect.Client[api.GetQuoteRequest, api.GetQuoteResponse]
	listQuotes  *connect.Client[api.ListQuotesRequest, api.ListQuotesResponse]
}

func (c *quoteServiceClient) SubmitQuote(ctx context.Context, req *connect.Request[api.SubmitQuoteRequest]) (*connect.Response[api.SubmitQuoteResponse], error) {
	return c.submitQuote.CallUnary(ctx, req)
}

func (c *quoteServiceClient) GetQuote(ctx context.Context, req *connect.Request[api.GetQuoteRequest]) (*connect.Response[api.GetQuoteResponse], error) {
	return c.getQuote.CallUnary(ctx, req)
}

func (c *quoteServiceClient) ListQuotes(ctx context.Context, req *connect.Request[api.ListQuotesRequest]) (*connect.Response[api.ListQuotesResponse], error) {
	return c.listQuotes.CallUnary(ctx, req)
}

// QuoteServiceHandler is an implementation of the carwash.v1.QuoteService service.
type QuoteServiceHandler interface {
	SubmitQuote(context.Context, *connect.Request[api.SubmitQuoteRequest]) (*connect.Response[api.SubmitQuoteResponse], error)
	GetQuote(context.Context, *connect.Request[api.GetQuoteRequest]) (*connect.Response[api.GetQuoteResponse], error)
	ListQuotes(context.Context, *connect.Request[api.ListQuotesRequest]) (*connect.Response[api.ListQuotesResponse], error)
}

// NewQuoteServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewQuoteServiceHandler(svc QuoteServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	submitQuote := connect.NewUnaryHandler(QuoteServiceSubmitQuoteProcedure, svc.SubmitQuote, opts...)
	getQuote := connect.NewUnaryHandler(QuoteServiceGetQuoteProcedure, svc.GetQuote, opts...)
	listQuotes := connect.NewUnaryHandler(QuoteServiceListQuotesProcedure, svc.ListQuotes, opts...)

	return "/" + QuoteServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case QuoteServiceSubmitQuoteProcedure:
			submitQuote.ServeHTTP(w, r)
		case QuoteServiceGetQuoteProcedure:
			getQuote.ServeHTTP(w, r)
		case QuoteServiceListQuotesProcedure:
			listQuotes.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
