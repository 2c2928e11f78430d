package bitlytest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbukum/bitly"
	"github.com/kbukum/bitly/httpclient"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	// DefaultToken is the access token accepted unless WithToken is used.
	DefaultToken = "test-token"
	// DefaultDomain is the short domain of created bitlinks.
	DefaultDomain = "bit.ly"
	// DefaultGroupGUID is the group every bitlink is created in.
	DefaultGroupGUID = "Ba1bc23dE4F"
	// DefaultOrganizationGUID owns the default group and all webhooks.
	DefaultOrganizationGUID = "Oa1bc23dE4F"
)

// Server is an in-memory fake of the Bitly v4 API.
type Server struct {
	ts     *httptest.Server
	engine *gin.Engine
	token  string
	domain string

	mu        sync.RWMutex
	bitlinks  map[string]*bitly.Bitlink
	byLongURL map[string]string
	webhooks  map[string]*bitly.Webhook
	overrides map[string]gin.HandlerFunc
	requests  int
}

// Option customizes a Server.
type Option func(*Server)

// WithToken sets the accepted bearer token.
func WithToken(token string) Option {
	return func(s *Server) { s.token = token }
}

// WithDomain sets the short domain of created bitlinks.
func WithDomain(domain string) Option {
	return func(s *Server) { s.domain = domain }
}

// NewServer starts a fake API server. Call Close when done.
func NewServer(opts ...Option) *Server {
	s := &Server{
		token:     DefaultToken,
		domain:    DefaultDomain,
		bitlinks:  make(map[string]*bitly.Bitlink),
		byLongURL: make(map[string]string),
		webhooks:  make(map[string]*bitly.Webhook),
		overrides: make(map[string]gin.HandlerFunc),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), s.count, s.override, s.authenticate)
	s.routes()
	s.engine.NoRoute(func(c *gin.Context) {
		abort(c, http.StatusNotFound, "NOT_FOUND", "")
	})

	s.ts = httptest.NewServer(s.engine)
	return s
}

// URL returns the base URL, e.g. "http://127.0.0.1:PORT".
func (s *Server) URL() string { return s.ts.URL }

// Token returns the accepted access token.
func (s *Server) Token() string { return s.token }

// Close shuts the server down.
func (s *Server) Close() { s.ts.Close() }

// Config returns a transport config pointing at the server.
func (s *Server) Config() httpclient.Config {
	cfg, _ := httpclient.ConfigFromURL(s.ts.URL)
	return cfg
}

// NewClient returns a client authenticated against the server.
func (s *Server) NewClient(opts ...bitly.Option) (*bitly.Client, error) {
	return bitly.New(s.token, append([]bitly.Option{bitly.WithConfig(s.Config())}, opts...)...)
}

// Handle overrides the route for method and exact path. Overrides run
// before authentication.
func (s *Server) Handle(method, path string, h gin.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[method+" "+path] = h
}

// Requests returns the number of requests received.
func (s *Server) Requests() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requests
}

// AddBitlink stores b as if it had been created through the API.
func (s *Server) AddBitlink(b bitly.Bitlink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeBitlink(&b)
}

// Bitlink returns a stored bitlink.
func (s *Server) Bitlink(id string) (bitly.Bitlink, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bitlinks[id]
	if !ok {
		return bitly.Bitlink{}, false
	}
	return *b, true
}

func (s *Server) storeBitlink(b *bitly.Bitlink) {
	if b.Link == "" {
		b.Link = "https://" + b.ID
	}
	s.bitlinks[b.ID] = b
	if b.LongURL != "" {
		s.byLongURL[b.LongURL] = b.ID
	}
}

func (s *Server) newBitlinkID() string {
	return s.domain + "/" + strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
}

func (s *Server) count(c *gin.Context) {
	s.mu.Lock()
	s.requests++
	s.mu.Unlock()
	c.Next()
}

func (s *Server) override(c *gin.Context) {
	s.mu.RLock()
	h, ok := s.overrides[c.Request.Method+" "+c.Request.URL.Path]
	s.mu.RUnlock()
	if !ok {
		c.Next()
		return
	}
	h(c)
	c.Abort()
}

func (s *Server) authenticate(c *gin.Context) {
	if c.GetHeader("Authorization") != "Bearer "+s.token {
		abort(c, http.StatusForbidden, "FORBIDDEN", "")
		return
	}
	c.Next()
}

// abort writes the API error envelope.
func abort(c *gin.Context, status int, message, description string, fields ...bitly.FieldError) {
	c.AbortWithStatusJSON(status, bitly.ErrorResponse{
		Message:     message,
		Description: description,
		Errors:      fields,
	})
}
