package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/signflow/internal/api/handlers"
	"github.com/linskybing/signflow/internal/api/middleware"
	"github.com/linskybing/signflow/internal/api/routes"
	"github.com/linskybing/signflow/internal/application"
	"github.com/linskybing/signflow/internal/config"
	"github.com/linskybing/signflow/internal/domain/document"
	notifymock "github.com/linskybing/signflow/internal/notify/mock"
	"github.com/linskybing/signflow/internal/repository"
	"github.com/linskybing/signflow/internal/testutils"
	blobmock "github.com/linskybing/signflow/pkg/blob/mock"
	"github.com/linskybing/signflow/pkg/phone"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type syncRunner struct{}

func (syncRunner) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	_ = fn(context.WithoutCancel(ctx))
}

var testPhones = phone.NormalizerFunc(func(raw, region string) (string, error) {
	if raw == "" || strings.Contains(raw, "x") {
		return "", phone.ErrInvalidNumber
	}
	if strings.HasPrefix(raw, "0") {
		return "+62" + raw[1:], nil
	}
	return raw, nil
})

type pinger struct{ err error }

func (p pinger) PingContext(ctx context.Context) error { return p.err }

type testEnv struct {
	Router    *gin.Engine
	DB        *gorm.DB
	Repos     *repository.Repos
	Blobs     *blobmock.MockStore
	Notifier  *notifymock.MockNotifier
	Callbacks *notifymock.MockCallbackPoster
	Token     string
}

func setupTestEnv(t *testing.T) *testEnv {
	return setupTestEnvWithDB(t, pinger{})
}

func setupTestEnvWithDB(t *testing.T, db handlers.Pinger) *testEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	templates, err := config.LoadTemplates("")
	require.NoError(t, err)

	database := testutils.NewSQLiteDB(t)
	env := &testEnv{
		DB:        database,
		Repos:     repository.NewRepositories(database),
		Blobs:     blobmock.NewMockStore(ctrl),
		Notifier:  notifymock.NewMockNotifier(ctrl),
		Callbacks: notifymock.NewMockCallbackPoster(ctrl),
	}

	services := application.New(application.Deps{
		Repos:     env.Repos,
		Blobs:     env.Blobs,
		Phones:    testPhones,
		Notifier:  env.Notifier,
		Callbacks: env.Callbacks,
		Tasks:     syncRunner{},
		Templates: templates,
		Logger:    zap.NewNop(),
		Options: application.Options{
			SenderLabel:     "PT Media Antar Nusa",
			SignBaseURL:     "https://sign.example.com",
			DownloadBaseURL: "https://api.example.com/download",
			InboxFolder:     "incoming",
			SignedFolder:    "signed",
			PoFolder:        "po",
			PollInterval:    10 * time.Millisecond,
		},
	})

	auth := middleware.NewServiceAuth("test-secret", "signflow-test")
	env.Token, err = auth.GenerateToken("billing", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	logging := middleware.NewLoggingMiddleware(zap.NewNop())
	router.Use(logging.RecoverPanic(), logging.LogRequest())
	routes.RegisterRoutes(router, handlers.New(services, db, middleware.OriginAllowed(nil), zap.NewNop()), auth)
	env.Router = router
	return env
}

// ---- HTTP helpers ----

type formFile struct {
	field, name, contentType string
	content                  []byte
}

type multipartForm struct {
	fields [][2]string
	files  []formFile
}

func (f *multipartForm) add(key, value string) *multipartForm {
	f.fields = append(f.fields, [2]string{key, value})
	return f
}

func (f *multipartForm) file(field, name, content string) *multipartForm {
	f.files = append(f.files, formFile{field: field, name: name, contentType: "application/pdf", content: []byte(content)})
	return f
}

func (f *multipartForm) encode(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, kv := range f.fields {
		require.NoError(t, w.WriteField(kv[0], kv[1]))
	}
	for _, ff := range f.files {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{`form-data; name="` + ff.field + `"; filename="` + ff.name + `"`}
		h["Content-Type"] = []string{ff.contentType}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(ff.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func (e *testEnv) postMultipart(t *testing.T, path string, form *multipartForm) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := form.encode(t)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	return e.serve(req)
}

func (e *testEnv) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.serve(req)
}

func (e *testEnv) postJSON(path string, body interface{}, token string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return e.serve(req)
}

func (e *testEnv) get(path string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return e.serve(req)
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// createDocument goes through POST /doc/create and returns the stored document.
func (e *testEnv) createDocument(t *testing.T, fileID string, phones ...string) *document.Document {
	t.Helper()
	e.Blobs.EXPECT().Create(gomock.Any(), "contract.pdf", "incoming", "application/pdf", gomock.Any(), gomock.Any()).Return(fileID, nil)
	e.Notifier.EXPECT().NotifySignRequest(gomock.Any(), gomock.Any(), "contract.pdf", "PT Media Antar Nusa", gomock.Any()).Return(nil)

	form := (&multipartForm{}).file("file", "contract.pdf", "%PDF-1.4")
	for _, p := range phones {
		form.add("phones[]", p)
	}
	w := e.postMultipart(t, "/doc/create", form)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	doc, err := e.Repos.Document.FindByFileID(fileID)
	require.NoError(t, err)
	return doc
}

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

var errBoom = errors.New("boom")
