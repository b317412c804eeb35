package controllers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/api"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/dtos"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/forms"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/middleware"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/services"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/utils"
)

// fetched returns the result of a real call against a canned backend.
func fetched[T any](t *testing.T, status int, body string) api.Result[T] {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	defer srv.Close()

	c, err := api.NewClientWithBase(srv.URL, 0, 0)
	require.NoError(t, err)
	return api.Fetch[T](context.Background(), c, "/", api.Options{})
}

type stubLikes struct {
	got    []dtos.AddLikeParams
	result services.LikeResult
}

func (s *stubLikes) Add(_ context.Context, p dtos.AddLikeParams) services.LikeResult {
	s.got = append(s.got, p)
	return s.result
}

func (s *stubLikes) Update(context.Context, dtos.UpdateLikeParams) services.LikeResult { return s.result }
func (s *stubLikes) Cancel(context.Context, dtos.UpdateLikeParams) services.LikeResult { return s.result }

func likeRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/actions/like/add", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func serve(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	middleware.LanguageMiddleware(h).ServeHTTP(rr, r)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestAddLike_Results(t *testing.T) {
	valid := url.Values{"sessionId": {"s"}, "likedUserId": {"u"}, "message": {"<b>hey</b>"}}

	tests := []struct {
		name   string
		result func(t *testing.T) services.LikeResult
		status int
		code   string
		body   string
	}{
		{
			name: "ok",
			result: func(t *testing.T) services.LikeResult {
				return fetched[dtos.Response[dtos.Like]](t, http.StatusCreated,
					`{"statusCode":201,"success":true,"data":{"id":1,"profileId":2,"likedUserId":"u",
					"isLiked":true,"createdAt":"a","updatedAt":"b"}}`)
			},
			status: http.StatusOK,
		},
		{
			name: "abort",
			result: func(*testing.T) services.LikeResult {
				return api.Fail[dtos.Response[dtos.Like]](api.ErrorTypeAbort, context.Canceled)
			},
			status: http.StatusGatewayTimeout,
			code:   utils.ErrCodeRequestAborted,
		},
		{
			name: "server",
			result: func(*testing.T) services.LikeResult {
				return api.Fail[dtos.Response[dtos.Like]](api.ErrorTypeServer, errors.New("dial tcp: refused"))
			},
			status: http.StatusBadGateway,
			code:   utils.ErrCodeExternalServiceFailure,
		},
		{
			name: "raw response",
			result: func(t *testing.T) services.LikeResult {
				return fetched[dtos.Response[dtos.Like]](t, http.StatusConflict,
					`{"message":"already liked","statusCode":409,"success":false}`)
			},
			status: http.StatusConflict,
			body:   `{"message":"already liked","statusCode":409,"success":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubLikes{result: tt.result(t)}
			rr := serve(NewLikeController(svc).AddLike, likeRequest(valid))

			assert.Equal(t, tt.status, rr.Code)
			require.Len(t, svc.got, 1)
			assert.Equal(t, "hey", svc.got[0].Message)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, rr)["code"])
			}
			if tt.body != "" {
				assert.JSONEq(t, tt.body, rr.Body.String())
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			}
		})
	}
}

func TestAddLike_ValidationStopsBeforeService(t *testing.T) {
	svc := &stubLikes{}
	r := likeRequest(url.Values{"likedUserId": {"u"}})
	r.AddCookie(&http.Cookie{Name: "i18next", Value: "ru"})
	rr := serve(NewLikeController(svc).AddLike, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, svc.got)

	body := decodeError(t, rr)
	assert.Equal(t, utils.ErrCodeValidation, body["code"])
	details, ok := body["details"].([]any)
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, map[string]any{
		"field": "sessionId", "code": "required", "message": "Заполните поле",
	}, details[0])
}

type stubReviews struct {
	called bool
}

func (s *stubReviews) Add(context.Context, dtos.AddReviewParams) services.ReviewResult {
	s.called = true
	return api.Fail[dtos.Response[dtos.Review]](api.ErrorTypeServer, errors.New("unused"))
}

func TestAddReview_ZeroRating(t *testing.T) {
	svc := &stubReviews{}
	values := url.Values{"profileId": {"1"}, "rating": {"0"}}
	r := httptest.NewRequest(http.MethodPost, "/actions/review/add", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := serve(NewReviewController(svc).AddReview, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, svc.called)
	assert.Contains(t, rr.Body.String(), `"field":"rating"`)
}

type stubProfiles struct {
	listParams dtos.ProfileListParams
	detailID   string
}

func (s *stubProfiles) List(_ context.Context, p dtos.ProfileListParams) api.Result[dtos.Response[dtos.ProfileList]] {
	s.listParams = p
	return api.Fail[dtos.Response[dtos.ProfileList]](api.ErrorTypeAbort, context.DeadlineExceeded)
}

func (s *stubProfiles) Detail(_ context.Context, id string) services.ProfileResult {
	s.detailID = id
	return api.Fail[dtos.Response[dtos.Profile]](api.ErrorTypeServer, errors.New("down"))
}

func (s *stubProfiles) Add(context.Context, dtos.ProfileForm) services.ProfileResult {
	return api.Fail[dtos.Response[dtos.Profile]](api.ErrorTypeServer, errors.New("unused"))
}

func (s *stubProfiles) Edit(context.Context, dtos.ProfileForm) services.ProfileResult {
	return api.Fail[dtos.Response[dtos.Profile]](api.ErrorTypeServer, errors.New("unused"))
}

type stubAuth struct {
	signup *forms.ProfileAddForm
}

func (s *stubAuth) Signup(_ context.Context, f forms.ProfileAddForm) services.ProfileResult {
	s.signup = &f
	return api.Fail[dtos.Response[dtos.Profile]](api.ErrorTypeAbort, context.Canceled)
}

func (s *stubAuth) UpdateAccount(context.Context, dtos.UpdateForm) services.UserResult {
	return api.Fail[dtos.Response[dtos.User]](api.ErrorTypeServer, errors.New("unused"))
}

type stubAccounts struct {
	edit *forms.ProfileEditForm
}

func (s *stubAccounts) EditProfile(_ context.Context, f forms.ProfileEditForm) services.ProfileResult {
	s.edit = &f
	return api.Fail[dtos.Response[dtos.Profile]](api.ErrorTypeServer, errors.New("down"))
}

func TestListProfiles_PassesQuery(t *testing.T) {
	profiles := &stubProfiles{}
	ctrl := NewProfileController(profiles, &stubAuth{}, &stubAccounts{})

	r := httptest.NewRequest(http.MethodGet, "/actions/profile/list?latitude=55.75&page=2", nil)
	rr := serve(ctrl.ListProfiles, r)

	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	assert.Equal(t, dtos.ProfileListParams{Latitude: "55.75", Page: "2"}, profiles.listParams)
}

func TestGetProfile(t *testing.T) {
	profiles := &stubProfiles{}
	ctrl := NewProfileController(profiles, &stubAuth{}, &stubAccounts{})

	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/actions/profile/detail/5", nil), map[string]string{"id": "5"})
	rr := serve(ctrl.GetProfile, r)
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Equal(t, "5", profiles.detailID)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/actions/profile/detail/", nil), map[string]string{"id": " "})
	rr = serve(ctrl.GetProfile, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAddProfile_MultipartSignup(t *testing.T) {
	auth := &stubAuth{}
	ctrl := NewProfileController(&stubProfiles{}, auth, &stubAccounts{})

	fields := map[string]string{
		"userName": "alice", "displayName": "Alice", "mobileNumber": "+7999",
		"password": "p", "passwordConfirm": "p", "birthday": "1990-01-01", "gender": "woman",
		"searchGender": "man", "lookingFor": "dating", "telegramId": "42", "telegramUserName": "a",
		"languageCode": "ru", "allowsWriteToPm": "true", "queryId": "q", "chatId": "c",
		"latitude": "1", "longitude": "2", "ageFrom": "18", "ageTo": "40", "distance": "5",
		"page": "1", "size": "10",
	}
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("image", "me.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := httptest.NewRequest(http.MethodPost, "/actions/profile/add", &buf)
	r.Header.Set("Content-Type", w.FormDataContentType())
	rr := serve(ctrl.AddProfile, r)

	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	require.NotNil(t, auth.signup)
	assert.Equal(t, "alice", auth.signup.UserName)
	require.Len(t, auth.signup.Image, 1)
	assert.Equal(t, "me.jpg", auth.signup.Image[0].Filename)
}

func TestEditProfile_InvalidPayload(t *testing.T) {
	accounts := &stubAccounts{}
	ctrl := NewProfileController(&stubProfiles{}, &stubAuth{}, accounts)

	r := httptest.NewRequest(http.MethodPost, "/actions/profile/edit", strings.NewReader("x"))
	r.Header.Set("Content-Type", "multipart/form-data")
	rr := serve(ctrl.EditProfile, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, utils.ErrCodeInvalidPayload, decodeError(t, rr)["code"])
	assert.Nil(t, accounts.edit)
}
