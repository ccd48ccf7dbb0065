package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/andreionishchenko/Final-proekt-D/internal/services"
)

func TestPropertyUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	propertyID := uuid.New()
	claims := &jwt.Claims{UserID: ownerID, IsLandlord: true, TokenType: jwt.TokenTypeAccess}

	newTitle := "Renovated flat"

	tests := []struct {
		name          string
		reqBody       UpdatePropertyRequest
		mockSetup     func(m *MockPropertyUpdater)
		expectedCode  int
		expectedError string
	}{
		{
			name:    "owner updates title",
			reqBody: UpdatePropertyRequest{Title: &newTitle},
			mockSetup: func(m *MockPropertyUpdater) {
				m.EXPECT().
					Update(gomock.Any(), claims, propertyID, models.PropertyUpdate{Title: &newTitle}).
					Return(&models.PropertyDB{PropertyID: propertyID, UserID: ownerID, Title: newTitle}, nil)
			},
			expectedCode: 200,
		},
		{
			name:    "non-owner is rejected",
			reqBody: UpdatePropertyRequest{Title: &newTitle},
			mockSetup: func(m *MockPropertyUpdater) {
				m.EXPECT().
					Update(gomock.Any(), claims, propertyID, models.PropertyUpdate{Title: &newTitle}).
					Return(nil, services.ErrNotOwner)
			},
			expectedCode:  403,
			expectedError: "You do not own this listing",
		},
		{
			name:    "tenant is rejected the same way",
			reqBody: UpdatePropertyRequest{Title: &newTitle},
			mockSetup: func(m *MockPropertyUpdater) {
				m.EXPECT().
					Update(gomock.Any(), claims, propertyID, models.PropertyUpdate{Title: &newTitle}).
					Return(nil, services.ErrNotLandlord)
			},
			expectedCode:  403,
			expectedError: "You do not own this listing",
		},
		{
			name:    "unknown property",
			reqBody: UpdatePropertyRequest{Title: &newTitle},
			mockSetup: func(m *MockPropertyUpdater) {
				m.EXPECT().
					Update(gomock.Any(), claims, propertyID, models.PropertyUpdate{Title: &newTitle}).
					Return(nil, services.ErrPropertyNotFound)
			},
			expectedCode:  404,
			expectedError: "Property not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPropertyUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewPropertyUpdateHandler(mockSvc, authedTokener(ctrl, claims))

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPatch, "/properties/"+propertyID.String(), bytes.NewBuffer(bodyBytes))
			req = withURLParam(req, "id", propertyID.String())

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var property models.PropertyDB
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &property))
				assert.Equal(t, newTitle, property.Title)
			}
		})
	}
}

func TestPropertyCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	landlordID := uuid.New()
	claims := &jwt.Claims{UserID: landlordID, IsLandlord: true, TokenType: jwt.TokenTypeAccess}

	t.Run("landlord creates a listing", func(t *testing.T) {
		mockSvc := NewMockPropertyCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), claims, "Cozy flat", "Near center", "Riga", "1200.00", 2, models.PropertyTypeApartment).
			Return(&models.PropertyDB{PropertyID: uuid.New(), UserID: landlordID, Title: "Cozy flat"}, nil)

		handler := NewPropertyCreateHandler(mockSvc, authedTokener(ctrl, claims))

		bodyBytes, _ := json.Marshal(CreatePropertyRequest{
			Title:        "Cozy flat",
			Description:  "Near center",
			Location:     "Riga",
			Price:        "1200.00",
			NumRooms:     2,
			PropertyType: models.PropertyTypeApartment,
		})
		req := httptest.NewRequest(http.MethodPost, "/properties", bytes.NewBuffer(bodyBytes))

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("non-landlord is rejected", func(t *testing.T) {
		mockSvc := NewMockPropertyCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), claims, "Cozy flat", "", "", "1200.00", 2, models.PropertyTypeApartment).
			Return(nil, services.ErrNotLandlord)

		handler := NewPropertyCreateHandler(mockSvc, authedTokener(ctrl, claims))

		bodyBytes, _ := json.Marshal(CreatePropertyRequest{
			Title:        "Cozy flat",
			Price:        "1200.00",
			NumRooms:     2,
			PropertyType: models.PropertyTypeApartment,
		})
		req := httptest.NewRequest(http.MethodPost, "/properties", bytes.NewBuffer(bodyBytes))

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
