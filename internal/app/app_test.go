package app

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"gramconnect/internal/config"
	"gramconnect/internal/database"
	"gramconnect/internal/logger"
	"gramconnect/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	server *httptest.Server
	db     *gorm.DB
	// client carries a cookie jar and does not follow redirects so
	// tests can assert on Location headers.
	client *http.Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init("test")

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")
	cfg.Session.Secret = "test_secret"
	cfg.Session.CookieName = "gramconnect_session"
	cfg.Upload.Dir = t.TempDir()
	cfg.Upload.MaxSize = 1 << 20
	cfg.Upload.AllowedExtensions = []string{"png", "jpg", "jpeg", "gif"}

	db, err := database.Open(cfg.Database.Path)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	server := httptest.NewServer(SetupRouter(cfg, db))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testServer{server: server, db: db, client: client}
}

func (ts *testServer) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	res, err := ts.client.Get(ts.server.URL + path)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func (ts *testServer) postForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	res, err := ts.client.PostForm(ts.server.URL+path, form)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func (ts *testServer) register(t *testing.T, username, password string) {
	t.Helper()
	res, _ := ts.postForm(t, "/register", url.Values{
		"username": {username},
		"password": {password},
		"fullname": {"Test " + username},
		"village":  {"Rampur"},
		"contact":  {"9876543210"},
	})
	require.Equal(t, http.StatusFound, res.StatusCode)
	require.Equal(t, "/", res.Header.Get("Location"))
}

func (ts *testServer) login(t *testing.T, username, password string) {
	t.Helper()
	res, _ := ts.postForm(t, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusFound, res.StatusCode)
}

func pageOf(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &payload), "body: %s", body)
	return payload
}

func notices(payload map[string]interface{}) []string {
	raw, _ := payload["notices"].([]interface{})
	out := make([]string, 0, len(raw))
	for _, n := range raw {
		if s, ok := n.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func TestRegisterLogsInAndRendersProfile(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "asha", "secret123")

	res, body := ts.get(t, "/profile")
	require.Equal(t, http.StatusOK, res.StatusCode)
	payload := pageOf(t, body)
	assert.Equal(t, "profile", payload["page"])
	assert.Contains(t, notices(payload), "Registration successful! Welcome to GramConnect.")

	identity := payload["current_user"].(map[string]interface{})
	assert.Equal(t, true, identity["is_authenticated"])
	assert.Equal(t, "asha", identity["username"])
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "asha", "secret123")

	res, _ := ts.get(t, "/logout")
	require.Equal(t, http.StatusFound, res.StatusCode)

	res, body := ts.postForm(t, "/register", url.Values{
		"username": {"asha"},
		"password": {"other456"},
		"contact":  {"9876543210"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	payload := pageOf(t, body)
	assert.Equal(t, "register", payload["page"])
	assert.Contains(t, notices(payload), "Username already exists! Please choose another one.")

	var count int64
	require.NoError(t, ts.db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "asha", "secret123")
	res, _ := ts.get(t, "/logout")
	require.Equal(t, http.StatusFound, res.StatusCode)

	// Wrong password and unknown username answer identically.
	for _, creds := range []url.Values{
		{"username": {"asha"}, "password": {"wrong"}},
		{"username": {"nobody"}, "password": {"secret123"}},
	} {
		res, body := ts.postForm(t, "/login", creds)
		require.Equal(t, http.StatusOK, res.StatusCode)
		payload := pageOf(t, body)
		assert.Equal(t, "login", payload["page"])
		assert.Contains(t, notices(payload), "Invalid username or password!")
	}
}

func TestGatedRoutesRedirectToLogin(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{
		"/profile", "/edit_profile", "/settings", "/my-applications",
		"/jobs/new", "/issues/report", "/marketplace/new",
	} {
		res, _ := ts.get(t, path)
		assert.Equal(t, http.StatusFound, res.StatusCode, "path %s", path)
		assert.Equal(t, "/login", res.Header.Get("Location"), "path %s", path)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "asha", "secret123")

	res, _ := ts.get(t, "/logout")
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get("Location"))

	res, _ = ts.get(t, "/profile")
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/login", res.Header.Get("Location"))
}

func TestCreateJobValidation(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "asha", "secret123")

	// Missing description re-renders without creating anything.
	res, body := ts.postForm(t, "/jobs/new", url.Values{
		"title":   {"Farm help"},
		"contact": {"9876543210"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	payload := pageOf(t, body)
	assert.Equal(t, "new_job", payload["page"])
	assert.Contains(t, notices(payload), "Title, description and contact information are required!")

	var count int64
	require.NoError(t, ts.db.Model(&models.Job{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	res, _ = ts.postForm(t, "/jobs/new", url.Values{
		"title":       {"Farm help"},
		"description": {"Seasonal field work"},
		"contact":     {"9876543210"},
		"category":    {"Agriculture"},
	})
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/jobs", res.Header.Get("Location"))

	require.NoError(t, ts.db.Model(&models.Job{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestJobListFiltersByCategory(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "asha", "secret123")

	for _, job := range []url.Values{
		{"title": {"Farm help"}, "description": {"d"}, "contact": {"1"}, "category": {"Agriculture"}},
		{"title": {"Shop assistant"}, "description": {"d"}, "contact": {"2"}, "category": {"Retail"}},
	} {
		res, _ := ts.postForm(t, "/jobs/new", job)
		require.Equal(t, http.StatusFound, res.StatusCode)
	}

	_, body := ts.get(t, "/jobs?category=Agriculture")
	payload := pageOf(t, body)
	jobs := payload["jobs"].([]interface{})
	require.Len(t, jobs, 1)
	assert.Equal(t, "Farm help", jobs[0].(map[string]interface{})["title"])
	assert.Equal(t, "Agriculture", payload["selected_category"])
}

func TestApplyTwiceKeepsOneApplication(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "asha", "secret123")

	res, _ := ts.postForm(t, "/jobs/new", url.Values{
		"title": {"Farm help"}, "description": {"d"}, "contact": {"1"},
	})
	require.Equal(t, http.StatusFound, res.StatusCode)

	var job models.Job
	require.NoError(t, ts.db.First(&job).Error)
	applyPath := "/jobs/" + itoa(job.ID) + "/apply"

	res, _ = ts.postForm(t, applyPath, url.Values{
		"name": {"Asha"}, "phone": {"9876500000"},
	})
	require.Equal(t, http.StatusFound, res.StatusCode)

	res, _ = ts.postForm(t, applyPath, url.Values{
		"name": {"Asha Devi"}, "phone": {"9876599999"},
	})
	require.Equal(t, http.StatusFound, res.StatusCode)

	// The updated notice is waiting on the job page.
	_, body := ts.get(t, "/jobs/"+itoa(job.ID))
	assert.Contains(t, notices(pageOf(t, body)), "Your application has been updated!")

	var count int64
	require.NoError(t, ts.db.Model(&models.JobApplication{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var app models.JobApplication
	require.NoError(t, ts.db.First(&app).Error)
	assert.Equal(t, "Asha Devi", app.Name)
}

func TestMissingJobRedirectsToListing(t *testing.T) {
	ts := newTestServer(t)

	res, _ := ts.get(t, "/jobs/99999")
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/jobs", res.Header.Get("Location"))

	_, body := ts.get(t, "/jobs")
	assert.Contains(t, notices(pageOf(t, body)), "Job not found!")
}

func TestSchemesAreSeeded(t *testing.T) {
	ts := newTestServer(t)

	_, body := ts.get(t, "/schemes")
	payload := pageOf(t, body)
	schemes := payload["schemes"].([]interface{})
	assert.Len(t, schemes, 3)

	res, _ := ts.get(t, "/schemes/99999")
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/schemes", res.Header.Get("Location"))
}

func TestMarketplaceSearchAndCategoryCombine(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "asha", "secret123")

	for _, p := range []url.Values{
		{"name": {"Fresh Tomatoes"}, "price": {"40"}, "contact": {"1"}, "category": {"Vegetables"}},
		{"name": {"Tomato Seeds"}, "price": {"80"}, "contact": {"2"}, "category": {"Seeds"}},
		{"name": {"Wheat"}, "price": {"25"}, "contact": {"3"}, "category": {"Grains"}},
	} {
		res, _ := ts.postForm(t, "/marketplace/new", p)
		require.Equal(t, http.StatusFound, res.StatusCode)
	}

	_, body := ts.get(t, "/marketplace?search=tomato&category=Vegetables")
	payload := pageOf(t, body)
	products := payload["products"].([]interface{})
	require.Len(t, products, 1)
	assert.Equal(t, "Fresh Tomatoes", products[0].(map[string]interface{})["name"])
}

func TestReportIssueRequiresFields(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "asha", "secret123")

	res, body := ts.postForm(t, "/issues/report", url.Values{
		"title": {"Broken hand pump"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, notices(pageOf(t, body)), "Title, description and location are required!")

	res, _ = ts.postForm(t, "/issues/report", url.Values{
		"title":       {"Broken hand pump"},
		"description": {"No water since Monday"},
		"location":    {"Ward 4"},
	})
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/issues", res.Header.Get("Location"))

	var issue models.Issue
	require.NoError(t, ts.db.First(&issue).Error)
	assert.Equal(t, models.IssueStatusPending, issue.Status)
}

func TestEditProfileUpdatesSessionName(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "asha", "secret123")

	res, _ := ts.postForm(t, "/edit_profile", url.Values{
		"fullname": {"Asha Devi"},
		"village":  {"Rampur"},
		"contact":  {"9876543210"},
	})
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/profile", res.Header.Get("Location"))

	_, body := ts.get(t, "/profile")
	payload := pageOf(t, body)
	assert.Contains(t, notices(payload), "Profile updated successfully!")
	identity := payload["current_user"].(map[string]interface{})
	assert.Equal(t, "Asha Devi", identity["fullname"])
}

func TestEditProfileRequiresContact(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "asha", "secret123")

	res, body := ts.postForm(t, "/edit_profile", url.Values{
		"fullname": {"Asha Devi"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, notices(pageOf(t, body)), "Contact information is required!")
}

func TestDirectUpload(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "asha", "secret123")

	res, body := ts.uploadFile(t, "/direct-upload", "file", "photo.png", "png-bytes")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "File uploaded successfully as asha_direct_")

	var user models.User
	require.NoError(t, ts.db.First(&user).Error)
	require.NotNil(t, user.ProfileImage)
	assert.Contains(t, *user.ProfileImage, "asha_direct_")
}

func TestDirectUploadRejectsBadType(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "asha", "secret123")

	res, body := ts.uploadFile(t, "/direct-upload", "file", "script.php", "<?php")
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Invalid file type")

	var user models.User
	require.NoError(t, ts.db.First(&user).Error)
	assert.Nil(t, user.ProfileImage, "a rejected upload must not touch the profile image")
}

func TestDirectUploadMissingFilePart(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "asha", "secret123")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, ts.server.URL+"/direct-upload", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	res, err := ts.client.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "No file part in the request", string(body))
}

func (ts *testServer) uploadFile(t *testing.T, path, field, filename, content string) (*http.Response, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, ts.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	res, err := ts.client.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
