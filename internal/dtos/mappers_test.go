package dtos

import (
	"net/url"
	"sort"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/forms"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/utils"
)

func signupForm() forms.ProfileAddForm {
	return forms.ProfileAddForm{
		UserName:         "alice",
		DisplayName:      "Alice",
		Email:            utils.Ptr("a@x.com"),
		MobileNumber:     "+79990000000",
		Password:         "p",
		PasswordConfirm:  "p",
		Birthday:         "1990-01-01",
		Gender:           "woman",
		SearchGender:     "man",
		Location:         utils.Ptr("Moscow"),
		Height:           utils.Ptr("170"),
		LookingFor:       "dating",
		TelegramID:       "42",
		TelegramUserName: "alice_tg",
		FirstName:        utils.Ptr("Alice"),
		LastName:         utils.Ptr("Liddell"),
		LanguageCode:     "ru",
		AllowsWriteToPm:  "true",
		QueryID:          "q",
		ChatID:           "c",
		Latitude:         "55.75",
		Longitude:        "37.61",
		AgeFrom:          "18",
		AgeTo:            "40",
		Distance:         "50",
		Page:             "1",
		Size:             "10",
	}
}

func jsonKeys(t *testing.T, v any) []string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestMapSignupToDto(t *testing.T) {
	profile, signup := MapSignupToDto(signupForm())

	want := SignupForm{
		Email:        "a@x.com",
		MobileNumber: "+79990000000",
		Password:     "p",
		Username:     "alice",
		FirstName:    "Alice",
		LastName:     "Liddell",
	}
	if diff := cmp.Diff(want, signup); diff != "" {
		t.Errorf("signup payload mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t,
		[]string{"email", "firstName", "lastName", "mobileNumber", "password", "username"},
		jsonKeys(t, signup))

	values, err := profile.Values()
	require.NoError(t, err)
	for _, k := range []string{"email", "password", "passwordConfirm", "mobileNumber", "id"} {
		assert.NotContains(t, values, k)
	}
	assert.Equal(t, "alice", values.Get("userName"))
	assert.Equal(t, "Alice", values.Get("displayName"))
	assert.Equal(t, "170", values.Get("height"))
	assert.Equal(t, "0", values.Get("weight"))
	assert.Equal(t, "", values.Get("description"))
	assert.Contains(t, values, "description")
	assert.Len(t, values, 25)
}

func TestMapSignupToDto_AbsentOptionals(t *testing.T) {
	f := signupForm()
	f.Email, f.FirstName, f.LastName = nil, nil, nil

	profile, signup := MapSignupToDto(f)
	assert.Equal(t, "", signup.Email)
	assert.Equal(t, "", signup.FirstName)
	assert.Equal(t, "", profile.LastName)
	assert.Nil(t, profile.Images)
}

func editForm() forms.ProfileEditForm {
	return forms.ProfileEditForm{
		ID:               "9",
		UserName:         "alice",
		DisplayName:      "Alice",
		Email:            "a@x.com",
		MobileNumber:     "+79990000000",
		Birthday:         "1990-01-01",
		Gender:           "woman",
		TelegramID:       "42",
		TelegramUserName: "alice_tg",
		FirstName:        "Alice",
		LastName:         "Liddell",
		LanguageCode:     "ru",
		AllowsWriteToPm:  "true",
		QueryID:          "q",
		ChatID:           "c",
		Latitude:         "55.75",
		Longitude:        "37.61",
		AgeFrom:          "18",
		AgeTo:            "40",
		Distance:         "50",
		Page:             "1",
		Size:             "10",
	}
}

func TestMapUpdateToDto_Fallbacks(t *testing.T) {
	profile, update := MapUpdateToDto(editForm())

	assert.Equal(t, "0", profile.Height)
	assert.Equal(t, "0", profile.Weight)
	assert.Equal(t, "", profile.Location)
	assert.Equal(t, "", profile.SearchGender)
	assert.Equal(t, "", profile.Description)
	assert.Equal(t, "", profile.LookingFor)
	assert.Nil(t, profile.Images)

	values, err := profile.Values()
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, values["height"])
	assert.Equal(t, []string{""}, values["location"])
	assert.Equal(t, "9", values.Get("id"))
	assert.Len(t, values, 26)

	want := UpdateForm{
		Email:        "a@x.com",
		MobileNumber: "+79990000000",
		Username:     "alice",
		FirstName:    "Alice",
		LastName:     "Liddell",
	}
	if diff := cmp.Diff(want, update); diff != "" {
		t.Errorf("update payload mismatch (-want +got):\n%s", diff)
	}
}

func TestMapUpdateToDto_KeepsProvidedOptionals(t *testing.T) {
	f := editForm()
	f.Height = utils.Ptr("182")
	f.Location = utils.Ptr("Kazan")
	f.SearchGender = utils.Ptr("")

	profile, _ := MapUpdateToDto(f)
	assert.Equal(t, "182", profile.Height)
	assert.Equal(t, "Kazan", profile.Location)
	assert.Equal(t, "", profile.SearchGender)
}

func TestProfileListParams_Query(t *testing.T) {
	tests := []struct {
		name   string
		params ProfileListParams
		want   url.Values
	}{
		{name: "empty", params: ProfileListParams{}, want: url.Values{}},
		{
			name:   "latitude only",
			params: ProfileListParams{Latitude: "55.75"},
			want:   url.Values{"latitude": {"55.75"}},
		},
		{
			name:   "paging",
			params: ProfileListParams{SessionID: "s", Page: "2", Size: "10"},
			want:   url.Values{"sessionId": {"s"}, "page": {"2"}, "size": {"10"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.params.Query()
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("query mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMapAddReview_KeepsNullMessage(t *testing.T) {
	p := MapAddReview(forms.AddReviewForm{ProfileID: "1", Rating: "5"})
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"profileId":"1","message":null,"rating":"5"}`, string(raw))
}
