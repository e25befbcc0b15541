package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestCreateBooking(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	body := `{
		"date": "2024-01-01",
		"email": "a@x.com",
		"treatmentName": "Teeth Cleaning",
		"slot": "08.00 AM - 08.30 AM",
		"patient": "A. Patient",
		"phone": "0123456789"
	}`

	mt.Run("rejects a duplicate (date, email, treatmentName)", func(mt *mtest.T) {
		existing := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "date", Value: "2024-01-01"},
			{Key: "email", Value: "a@x.com"},
			{Key: "treatmentName", Value: "Teeth Cleaning"},
			{Key: "slot", Value: "09.00 AM - 09.30 AM"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "doctors-portal.bookings", mtest.FirstBatch, existing))

		r := newTestRouter(mt.DB, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, false, got["acknowledged"])
		assert.Equal(t, "You already have a booking on 2024-01-01", got["message"])
	})

	mt.Run("inserts when no duplicate exists", func(mt *mtest.T) {
		empty := mtest.CreateCursorResponse(0, "doctors-portal.bookings", mtest.FirstBatch)
		mt.AddMockResponses(empty, mtest.CreateSuccessResponse())

		r := newTestRouter(mt.DB, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, true, got["acknowledged"])
		assert.NotEmpty(t, got["insertedId"])
	})
}

func TestGetBookings(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the bookings for the queried email", func(mt *mtest.T) {
		booked := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "date", Value: "2024-01-01"},
			{Key: "email", Value: "a@x.com"},
			{Key: "treatmentName", Value: "Teeth Cleaning"},
			{Key: "slot", Value: "08.00 AM - 08.30 AM"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "doctors-portal.bookings", mtest.FirstBatch, booked))

		r := newTestRouter(mt.DB, "a@x.com")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/bookings?email=a@x.com", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var got []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "a@x.com", got[0]["email"])
		assert.Equal(t, "Teeth Cleaning", got[0]["treatmentName"])
	})

	mt.Run("no bookings yields an empty list", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "doctors-portal.bookings", mtest.FirstBatch))

		r := newTestRouter(mt.DB, "b@x.com")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/bookings?email=b@x.com", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}
