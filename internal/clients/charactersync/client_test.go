package charactersync_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KirkDiggler/dnd-character-sheet/internal/clients/charactersync"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
	sheeterr "github.com/KirkDiggler/dnd-character-sheet/internal/errors"
	"github.com/KirkDiggler/dnd-character-sheet/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	client  *charactersync.Client
	ctx     context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))

	client, err := charactersync.New(&charactersync.Config{
		BaseURL:    s.server.URL + "/api/",
		HTTPClient: s.server.Client(),
		IDs:        uuid.NewSequenceGenerator("req"),
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestLoad_Success() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Equal("/api/user-1/character", r.URL.Path)
		s.Equal("req-1", r.Header.Get(charactersync.RequestIDHeader))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"statusCode": 200,
			"body": {
				"attributes": {"Strength": 14, "Dexterity": 12, "Constitution": 10, "Intelligence": 10, "Wisdom": 8, "Charisma": 10},
				"skills": {"Athletics": 3, "Stealth": 1}
			}
		}`)
	}

	snapshot, err := s.client.Load(s.ctx, "user-1")
	s.Require().NoError(err)

	s.Equal(14, snapshot.Attributes[shared.AttributeStrength])
	s.Equal(8, snapshot.Attributes[shared.AttributeWisdom])
	s.Len(snapshot.Attributes, 6)
	s.Equal(map[string]int{"Athletics": 3, "Stealth": 1}, snapshot.Skills)
}

func (s *ClientTestSuite) TestLoad_Failures() {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode sheeterr.Code
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{}`, wantCode: sheeterr.CodeUnavailable},
		{name: "not found", status: http.StatusNotFound, body: ``, wantCode: sheeterr.CodeUnavailable},
		{name: "malformed json", status: http.StatusOK, body: `{"body":`, wantCode: sheeterr.CodeValidation},
		{name: "missing body", status: http.StatusOK, body: `{"statusCode":200}`, wantCode: sheeterr.CodeValidation},
		{name: "null body", status: http.StatusOK, body: `{"body":null}`, wantCode: sheeterr.CodeValidation},
		{name: "missing skills", status: http.StatusOK, body: `{"body":{"attributes":{"Strength":10}}}`, wantCode: sheeterr.CodeValidation},
		{name: "missing attributes", status: http.StatusOK, body: `{"body":{"skills":{}}}`, wantCode: sheeterr.CodeValidation},
		{name: "non integer score", status: http.StatusOK, body: `{"body":{"attributes":{"Strength":"ten"},"skills":{}}}`, wantCode: sheeterr.CodeValidation},
		{name: "fractional rank", status: http.StatusOK, body: `{"body":{"attributes":{},"skills":{"Arcana":1.5}}}`, wantCode: sheeterr.CodeValidation},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.handler = func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}

			snapshot, err := s.client.Load(s.ctx, "user-1")
			s.Require().Error(err)
			s.Nil(snapshot)
			s.Equal(tt.wantCode, sheeterr.GetCode(err))
		})
	}
}

func (s *ClientTestSuite) TestLoad_TransportError() {
	s.server.Close()

	_, err := s.client.Load(s.ctx, "user-1")
	s.Require().Error(err)
	s.True(sheeterr.IsUnavailable(err))
}

func (s *ClientTestSuite) TestSave_Success() {
	var received map[string]map[string]int
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/api/user-1/character", r.URL.Path)
		s.Equal("application/json", r.Header.Get("Content-Type"))
		s.NotEmpty(r.Header.Get(charactersync.RequestIDHeader))
		s.NoError(json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}

	sheet := character.NewSheet(nil)
	s.Require().True(sheet.Attributes.Adjust(shared.AttributeIntelligence, 4))
	s.Require().True(sheet.Skills.Adjust("Arcana", 2))

	s.Require().NoError(s.client.Save(s.ctx, "user-1", sheet.Snapshot()))

	s.Len(received, 2)
	s.Equal(14, received["attributes"]["Intelligence"])
	s.Len(received["attributes"], 6)
	s.Equal(2, received["skills"]["Arcana"])
	s.Len(received["skills"], 18)
}

func (s *ClientTestSuite) TestSave_NonSuccessStatus() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}

	err := s.client.Save(s.ctx, "user-1", character.DefaultSnapshot(nil))
	s.Require().Error(err)
	s.True(sheeterr.IsUnavailable(err))
	s.Equal(http.StatusBadGateway, sheeterr.GetMeta(err)["status"])
}

func (s *ClientTestSuite) TestSaveThenLoad_RoundTrip() {
	var stored []byte
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			body, err := io.ReadAll(r.Body)
			s.NoError(err)
			stored = body
		case http.MethodGet:
			_, _ = io.WriteString(w, `{"statusCode":200,"body":`+string(stored)+`}`)
		}
	}

	sheet := character.NewSheet(nil)
	s.Require().True(sheet.Attributes.Adjust(shared.AttributeCharisma, 5))
	s.Require().True(sheet.Skills.Adjust("Performance", 4))
	saved := sheet.Snapshot()

	s.Require().NoError(s.client.Save(s.ctx, "user-1", saved))
	loaded, err := s.client.Load(s.ctx, "user-1")
	s.Require().NoError(err)

	s.Equal(saved, loaded)
}

func (s *ClientTestSuite) TestOwnerIDIsEscaped() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/api/{ukai18}/character", r.URL.Path)
		s.Equal("/api/%7Bukai18%7D/character", r.URL.EscapedPath())
		_, _ = io.WriteString(w, `{"body":{"attributes":{},"skills":{}}}`)
	}

	_, err := s.client.Load(s.ctx, "{ukai18}")
	s.NoError(err)
}

func (s *ClientTestSuite) TestRequiresOwner() {
	_, err := s.client.Load(s.ctx, "")
	s.True(sheeterr.IsInvalidArgument(err))

	err = s.client.Save(s.ctx, "", character.DefaultSnapshot(nil))
	s.True(sheeterr.IsInvalidArgument(err))

	err = s.client.Save(s.ctx, "user-1", nil)
	s.True(sheeterr.IsInvalidArgument(err))
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func TestNew_Validation(t *testing.T) {
	_, err := charactersync.New(nil)
	assert.True(t, sheeterr.IsInvalidArgument(err))

	_, err = charactersync.New(&charactersync.Config{})
	assert.True(t, sheeterr.IsInvalidArgument(err))

	client, err := charactersync.New(&charactersync.Config{BaseURL: "http://localhost"})
	require.NoError(t, err)
	assert.NotNil(t, client)
}
