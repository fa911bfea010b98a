// Package baastest runs an in-process BaaS server for tests and examples.
//
// The server checks the authCode of every request on its own: it parses the
// header, rejects unknown access IDs, timestamps outside of the allowed skew
// and replayed nonces, then recomputes the signature over the path and query
// parameters it received. Login issues a JWT in the session-token header;
// device and role endpoints require it.
package baastest

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/schema"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/Angies2/baas-sdk-go/authcode"
	apierrors "github.com/Angies2/baas-sdk-go/errors"
	"github.com/Angies2/baas-sdk-go/internal/shared"
)

const (
	authCodeHeader     = "authCode"
	sessionTokenHeader = "session-token"

	DefaultMaxSkew  = 5 * time.Minute
	DefaultTokenTTL = time.Hour
)

var (
	validate      = validator.New()
	schemaDecoder = schema.NewDecoder()
)

func init() {
	schemaDecoder.IgnoreUnknownKeys(true)
}

// Config describes the accounts the server knows.
type Config struct {
	AccessID  string
	AccessKey string

	// AppToken identifies the application at login and registration.
	AppToken string

	// Users maps login names to passwords.
	Users map[string]string

	// Roles are returned by the role endpoints. Defaults to admin and user.
	Roles []string

	// MaxSkew is the largest accepted distance between the authCode
	// timestamp and the server clock.
	MaxSkew time.Duration

	Now       func() time.Time
	Logger    *zap.Logger
	JWTSecret []byte
	TokenTTL  time.Duration
}

// Device is a device record of the fake server.
type Device struct {
	DeviceID    string `json:"deviceId"`
	DeviceName  string `json:"deviceName"`
	DeviceOwner string `json:"deviceOwner,omitempty"`
	Description string `json:"description,omitempty"`
	Enabled     bool   `json:"enabled"`
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) (any, error)

// Server is an http.Handler serving a subset of the BaaS API.
type Server struct {
	cfg    Config
	logger *zap.Logger
	mux    *http.ServeMux

	mu      sync.Mutex
	nonces  map[string]time.Time
	devices map[string]*Device
	nextID  int
}

// New creates a server. Zero fields of cfg get defaults; a missing
// JWTSecret is replaced by random bytes.
func New(cfg Config) *Server {
	if cfg.MaxSkew == 0 {
		cfg.MaxSkew = DefaultMaxSkew
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if len(cfg.Roles) == 0 {
		cfg.Roles = []string{"admin", "user"}
	}
	if len(cfg.JWTSecret) == 0 {
		cfg.JWTSecret = make([]byte, 32)
		if _, err := rand.Read(cfg.JWTSecret); err != nil {
			panic(fmt.Sprintf("failed to generate JWT secret: %v", err))
		}
	}

	s := &Server{
		cfg:     cfg,
		logger:  cfg.Logger,
		mux:     http.NewServeMux(),
		nonces:  map[string]time.Time{},
		devices: map[string]*Device{},
	}

	s.handle("POST /v1.0/login", nil, s.login)
	s.handle("GET /v1.0/roles/allowReg", nil, s.allowRegRoles)
	s.handle("GET /v1.0/roles/offSpringRole", nil, s.session(s.roles))
	s.handle("GET /v1.0/devices", nil, s.session(s.listDevices))
	s.handle("POST /v1.0/devices", nil, s.session(s.addDevice))
	s.handle("GET /v1.0/devices/info/{deviceId}", []string{"deviceId"}, s.session(s.getDevice))
	s.handle("PUT /v1.0/devices/info/{deviceId}", []string{"deviceId"}, s.session(s.updateDevice))
	s.handle("PUT /v1.0/devices/enable/{deviceId}", []string{"deviceId"}, s.session(s.setEnabled(true)))
	s.handle("PUT /v1.0/devices/disable/{deviceId}", []string{"deviceId"}, s.session(s.setEnabled(false)))
	s.handle("DELETE /v1.0/devices/{deviceId}", []string{"deviceId"}, s.session(s.deleteDevice))

	return s
}

// Start serves a new server on a local port until the test ends.
func Start(t testing.TB, cfg Config) (*Server, *httptest.Server) {
	t.Helper()
	s := New(cfg)
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return s, ts
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Devices returns a snapshot of the stored devices ordered by ID.
func (s *Server) Devices() []Device {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedDevices()
}

func (s *Server) handle(pattern string, pathParams []string, h handlerFunc) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		if err := s.verify(r, pathParams); err != nil {
			s.logger.Debug("request rejected",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			s.writeError(w, err)
			return
		}

		data, err := h(w, r)
		if err != nil {
			s.logger.Debug("request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			s.writeError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, shared.Envelope[any]{
			Code:    0,
			Message: "success",
			Status:  "OK",
			Data:    data,
		})
	})
}

// verify checks the authCode header of r against the path and query
// parameters the server received.
func (s *Server) verify(r *http.Request, pathParams []string) error {
	header := r.Header.Get(authCodeHeader)
	if header == "" {
		return apierrors.Unauthenticated("missing %s header", authCodeHeader)
	}
	fields, err := authcode.Parse(header)
	if err != nil {
		return apierrors.Unauthenticated("%w", err)
	}
	if fields.AccessID != s.cfg.AccessID {
		return apierrors.Unauthenticated("unknown accessId %q", fields.AccessID)
	}

	now := s.cfg.Now()
	skew := now.Sub(time.UnixMilli(fields.Timestamp))
	if skew < 0 {
		skew = -skew
	}
	if skew > s.cfg.MaxSkew {
		return apierrors.Unauthenticated("timestamp %d is outside of the allowed skew", fields.Timestamp)
	}

	params := map[string]any{}
	for _, name := range pathParams {
		params[name] = r.PathValue(name)
	}
	for key, values := range r.URL.Query() {
		if len(values) == 1 {
			params[key] = values[0]
		} else {
			params[key] = values
		}
	}
	ok, err := authcode.Verify(fields, s.cfg.AccessKey, r.Method, params)
	if err != nil {
		return apierrors.Unauthenticated("%w", err)
	}
	if !ok {
		return apierrors.Unauthenticated("signature mismatch")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for nonce, expires := range s.nonces {
		if now.After(expires) {
			delete(s.nonces, nonce)
		}
	}
	key := fields.AccessID + "/" + fields.Nonce
	if _, seen := s.nonces[key]; seen {
		return apierrors.Unauthenticated("nonce %q was already used", fields.Nonce)
	}
	s.nonces[key] = now.Add(2 * s.cfg.MaxSkew)
	return nil
}

type loginForm struct {
	AppToken  string `schema:"appToken" validate:"required"`
	LoginName string `schema:"loginName" validate:"required"`
	Password  string `schema:"password" validate:"required"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) (any, error) {
	if err := r.ParseForm(); err != nil {
		return nil, apierrors.InvalidArgument("failed to parse form: %w", err)
	}
	var form loginForm
	if err := schemaDecoder.Decode(&form, r.PostForm); err != nil {
		return nil, apierrors.InvalidArgument("failed to decode form: %w", err)
	}
	if err := validate.Struct(&form); err != nil {
		return nil, apierrors.InvalidArgument("%w", err)
	}
	if form.AppToken != s.cfg.AppToken {
		return nil, apierrors.PermissionDenied("unknown appToken")
	}
	if password, ok := s.cfg.Users[form.LoginName]; !ok || password != form.Password {
		return nil, apierrors.Unauthenticated("wrong login name or password")
	}

	now := s.cfg.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Subject:   form.LoginName,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	}).SignedString(s.cfg.JWTSecret)
	if err != nil {
		return nil, apierrors.Internal("failed to sign session token: %w", err)
	}
	w.Header().Set(sessionTokenHeader, token)
	s.logger.Debug("user logged in", zap.String("loginName", form.LoginName))

	return map[string]any{"loginName": form.LoginName}, nil
}

// session wraps h with a session token check.
func (s *Server) session(h handlerFunc) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) (any, error) {
		raw := r.Header.Get(sessionTokenHeader)
		if raw == "" {
			return nil, apierrors.Unauthenticated("missing %s header", sessionTokenHeader)
		}
		var claims jwt.RegisteredClaims
		_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
			return s.cfg.JWTSecret, nil
		},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(s.cfg.Now),
			jwt.WithExpirationRequired(),
		)
		if err != nil {
			return nil, apierrors.Unauthenticated("invalid session token: %w", err)
		}
		if _, ok := s.cfg.Users[claims.Subject]; !ok {
			return nil, apierrors.Unauthenticated("unknown user %q", claims.Subject)
		}
		return h(w, r)
	}
}

func (s *Server) allowRegRoles(w http.ResponseWriter, r *http.Request) (any, error) {
	if r.URL.Query().Get("appToken") != s.cfg.AppToken {
		return nil, apierrors.PermissionDenied("unknown appToken")
	}
	return s.cfg.Roles, nil
}

func (s *Server) roles(w http.ResponseWriter, r *http.Request) (any, error) {
	return s.cfg.Roles, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	text := r.URL.Query().Get(name)
	if text == "" {
		return def, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 {
		return 0, apierrors.InvalidArgument("bad %s %q", name, text)
	}
	return n, nil
}

func (s *Server) listDevices(w http.ResponseWriter, r *http.Request) (any, error) {
	pageNum, err := queryInt(r, "pageNum", 1)
	if err != nil {
		return nil, err
	}
	pageSize, err := queryInt(r, "pageSize", 10)
	if err != nil {
		return nil, err
	}
	name := r.URL.Query().Get("deviceName")
	owner := r.URL.Query().Get("deviceOwner")

	s.mu.Lock()
	all := s.sortedDevices()
	s.mu.Unlock()

	var matched []Device
	for _, d := range all {
		if name != "" && !strings.Contains(d.DeviceName, name) {
			continue
		}
		if owner != "" && d.DeviceOwner != owner {
			continue
		}
		matched = append(matched, d)
	}

	page := shared.Page[Device]{
		Total:    len(matched),
		PageNum:  pageNum,
		PageSize: pageSize,
		List:     []Device{},
	}
	start := (pageNum - 1) * pageSize
	if start < len(matched) {
		end := min(start+pageSize, len(matched))
		page.List = matched[start:end]
	}
	return page, nil
}

const addDeviceSchema = `{
	"type": "object",
	"required": ["deviceName"],
	"properties": {
		"deviceName": {"type": "string", "minLength": 1},
		"deviceOwner": {"type": "string"},
		"description": {"type": "string"}
	}
}`

const updateDeviceSchema = `{
	"type": "object",
	"minProperties": 1,
	"properties": {
		"deviceName": {"type": "string", "minLength": 1},
		"deviceOwner": {"type": "string"},
		"description": {"type": "string"}
	}
}`

var (
	addDeviceValidator    = mustSchema(addDeviceSchema)
	updateDeviceValidator = mustSchema(updateDeviceSchema)
)

func mustSchema(text string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(text))
	if err != nil {
		panic(fmt.Sprintf("failed to compile schema: %v", err))
	}
	return compiled
}

type deviceFields struct {
	DeviceName  *string `json:"deviceName"`
	DeviceOwner *string `json:"deviceOwner"`
	Description *string `json:"description"`
}

// readDevice validates the JSON body of r against compiled.
func readDevice(r *http.Request, compiled *gojsonschema.Schema) (*deviceFields, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, apierrors.InvalidArgument("failed to read body: %w", err)
	}
	result, err := compiled.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, apierrors.InvalidArgument("body is not JSON: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, apierrors.InvalidArgument("invalid device: %s", strings.Join(problems, "; "))
	}
	var fields deviceFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, apierrors.InvalidArgument("failed to decode device: %w", err)
	}
	return &fields, nil
}

func (s *Server) addDevice(w http.ResponseWriter, r *http.Request) (any, error) {
	fields, err := readDevice(r, addDeviceValidator)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nameTaken(*fields.DeviceName, "") {
		return nil, apierrors.AlreadyExists("device %q already exists", *fields.DeviceName)
	}
	s.nextID++
	d := &Device{
		DeviceID:   strconv.Itoa(s.nextID),
		DeviceName: *fields.DeviceName,
		Enabled:    true,
	}
	if fields.DeviceOwner != nil {
		d.DeviceOwner = *fields.DeviceOwner
	}
	if fields.Description != nil {
		d.Description = *fields.Description
	}
	s.devices[d.DeviceID] = d
	return *d, nil
}

func (s *Server) getDevice(w http.ResponseWriter, r *http.Request) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.device(r.PathValue("deviceId"))
	if err != nil {
		return nil, err
	}
	return *d, nil
}

func (s *Server) updateDevice(w http.ResponseWriter, r *http.Request) (any, error) {
	fields, err := readDevice(r, updateDeviceValidator)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.device(r.PathValue("deviceId"))
	if err != nil {
		return nil, err
	}
	if fields.DeviceName != nil {
		if s.nameTaken(*fields.DeviceName, d.DeviceID) {
			return nil, apierrors.AlreadyExists("device %q already exists", *fields.DeviceName)
		}
		d.DeviceName = *fields.DeviceName
	}
	if fields.DeviceOwner != nil {
		d.DeviceOwner = *fields.DeviceOwner
	}
	if fields.Description != nil {
		d.Description = *fields.Description
	}
	return *d, nil
}

func (s *Server) setEnabled(enabled bool) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		d, err := s.device(r.PathValue("deviceId"))
		if err != nil {
			return nil, err
		}
		d.Enabled = enabled
		return *d, nil
	}
}

func (s *Server) deleteDevice(w http.ResponseWriter, r *http.Request) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := r.PathValue("deviceId")
	if _, err := s.device(id); err != nil {
		return nil, err
	}
	delete(s.devices, id)
	return nil, nil
}

// device must be called with mu held.
func (s *Server) device(id string) (*Device, error) {
	d, ok := s.devices[id]
	if !ok {
		return nil, apierrors.NotFound("device %q not found", id)
	}
	return d, nil
}

// nameTaken must be called with mu held.
func (s *Server) nameTaken(name, exceptID string) bool {
	for id, d := range s.devices {
		if id != exceptID && d.DeviceName == name {
			return true
		}
	}
	return false
}

// sortedDevices must be called with mu held.
func (s *Server) sortedDevices() []Device {
	list := make([]Device, 0, len(s.devices))
	for _, d := range s.devices {
		list = append(list, *d)
	}
	sort.Slice(list, func(i, j int) bool {
		a, _ := strconv.Atoi(list[i].DeviceID)
		b, _ := strconv.Atoi(list[j].DeviceID)
		return a < b
	})
	return list
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := apierrors.HttpCodeOf(err)
	s.writeJSON(w, status, shared.Envelope[any]{
		Code:    status,
		Message: err.Error(),
		Status:  apierrors.CodeOf(err).String(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		s.logger.Error("failed to marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		s.logger.Debug("failed to write response", zap.Error(err))
	}
}
