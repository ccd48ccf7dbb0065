package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/andreionishchenko/Final-proekt-D/internal/services"
)

func TestPropertyService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	landlordID := uuid.New()

	tests := []struct {
		name         string
		claims       *jwt.Claims
		price        string
		numRooms     int
		propertyType string
		mockSetup    func(writer *services.MockPropertyWriter)
		wantErr      error
	}{
		{
			name:         "landlord creates a listing",
			claims:       &jwt.Claims{UserID: landlordID, IsLandlord: true},
			price:        "1200.00",
			numRooms:     2,
			propertyType: models.PropertyTypeApartment,
			mockSetup: func(writer *services.MockPropertyWriter) {
				writer.EXPECT().
					Save(gomock.Any(), landlordID, "Cozy flat", "Near center", "Riga", "1200.00", 2, models.PropertyTypeApartment).
					Return(&models.PropertyDB{PropertyID: uuid.New(), UserID: landlordID, Title: "Cozy flat"}, nil)
			},
		},
		{
			name:         "tenant may not create listings",
			claims:       &jwt.Claims{UserID: uuid.New(), IsTenant: true},
			price:        "1200.00",
			numRooms:     2,
			propertyType: models.PropertyTypeApartment,
			wantErr:      services.ErrNotLandlord,
		},
		{
			name:         "unknown property type",
			claims:       &jwt.Claims{UserID: landlordID, IsLandlord: true},
			price:        "1200.00",
			numRooms:     2,
			propertyType: "castle",
			wantErr:      services.ErrInvalidProperty,
		},
		{
			name:         "non-positive room count",
			claims:       &jwt.Claims{UserID: landlordID, IsLandlord: true},
			price:        "1200.00",
			numRooms:     0,
			propertyType: models.PropertyTypeHouse,
			wantErr:      services.ErrInvalidProperty,
		},
		{
			name:         "empty price",
			claims:       &jwt.Claims{UserID: landlordID, IsLandlord: true},
			price:        "",
			numRooms:     1,
			propertyType: models.PropertyTypeHouse,
			wantErr:      services.ErrInvalidProperty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockPropertyReader(ctrl)
			mockWriter := services.NewMockPropertyWriter(ctrl)
			mockViews := services.NewMockViewWriter(ctrl)
			mockSearches := services.NewMockSearchWriter(ctrl)

			if tt.mockSetup != nil {
				tt.mockSetup(mockWriter)
			}

			svc := services.NewPropertyService(mockReader, mockWriter, mockViews, mockSearches, nil)

			property, err := svc.Create(context.Background(), tt.claims, "Cozy flat", "Near center", "Riga", tt.price, tt.numRooms, tt.propertyType)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, property)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, landlordID, property.UserID)
			}
		})
	}
}

func TestPropertyService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID, IsTenant: true}

	t.Run("plain listing does not touch search history", func(t *testing.T) {
		mockReader := services.NewMockPropertyReader(ctrl)
		mockWriter := services.NewMockPropertyWriter(ctrl)
		mockViews := services.NewMockViewWriter(ctrl)
		mockSearches := services.NewMockSearchWriter(ctrl)

		filter := models.PropertyFilter{}
		expected := []models.PropertyDB{{PropertyID: uuid.New()}}
		mockReader.EXPECT().
			List(gomock.Any(), filter).
			Return(expected, nil)

		svc := services.NewPropertyService(mockReader, mockWriter, mockViews, mockSearches, nil)

		got, err := svc.List(context.Background(), claims, filter)
		assert.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("keyword search is recorded and published", func(t *testing.T) {
		mockReader := services.NewMockPropertyReader(ctrl)
		mockWriter := services.NewMockPropertyWriter(ctrl)
		mockViews := services.NewMockViewWriter(ctrl)
		mockSearches := services.NewMockSearchWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		keyword := "sea view"
		filter := models.PropertyFilter{Search: &keyword}
		mockReader.EXPECT().
			List(gomock.Any(), filter).
			Return([]models.PropertyDB{}, nil)
		mockSearches.EXPECT().
			Save(gomock.Any(), userID, keyword).
			Return(&models.SearchHistoryDB{SearchID: uuid.New(), UserID: userID, Keyword: keyword}, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := services.NewPropertyService(mockReader, mockWriter, mockViews, mockSearches, mockKafka)

		_, err := svc.List(context.Background(), claims, filter)
		assert.NoError(t, err)
	})
}

func TestPropertyService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	propertyID := uuid.New()
	property := &models.PropertyDB{PropertyID: propertyID, UserID: ownerID}

	newTitle := "Updated title"
	update := models.PropertyUpdate{Title: &newTitle}

	tests := []struct {
		name      string
		claims    *jwt.Claims
		mockSetup func(reader *services.MockPropertyReader, writer *services.MockPropertyWriter)
		wantErr   error
	}{
		{
			name:   "owner updates own listing",
			claims: &jwt.Claims{UserID: ownerID, IsLandlord: true},
			mockSetup: func(reader *services.MockPropertyReader, writer *services.MockPropertyWriter) {
				reader.EXPECT().
					GetByID(gomock.Any(), propertyID).
					Return(property, nil)
				writer.EXPECT().
					Update(gomock.Any(), propertyID, update).
					Return(&models.PropertyDB{PropertyID: propertyID, UserID: ownerID, Title: newTitle}, nil)
			},
		},
		{
			name:    "tenant may not update",
			claims:  &jwt.Claims{UserID: uuid.New(), IsTenant: true},
			wantErr: services.ErrNotLandlord,
		},
		{
			name:   "another landlord may not update",
			claims: &jwt.Claims{UserID: uuid.New(), IsLandlord: true},
			mockSetup: func(reader *services.MockPropertyReader, writer *services.MockPropertyWriter) {
				reader.EXPECT().
					GetByID(gomock.Any(), propertyID).
					Return(property, nil)
			},
			wantErr: services.ErrNotOwner,
		},
		{
			name:   "unknown property",
			claims: &jwt.Claims{UserID: ownerID, IsLandlord: true},
			mockSetup: func(reader *services.MockPropertyReader, writer *services.MockPropertyWriter) {
				reader.EXPECT().
					GetByID(gomock.Any(), propertyID).
					Return(nil, nil)
			},
			wantErr: services.ErrPropertyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockPropertyReader(ctrl)
			mockWriter := services.NewMockPropertyWriter(ctrl)
			mockViews := services.NewMockViewWriter(ctrl)
			mockSearches := services.NewMockSearchWriter(ctrl)

			if tt.mockSetup != nil {
				tt.mockSetup(mockReader, mockWriter)
			}

			svc := services.NewPropertyService(mockReader, mockWriter, mockViews, mockSearches, nil)

			updated, err := svc.Update(context.Background(), tt.claims, propertyID, update)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, updated)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, newTitle, updated.Title)
			}
		})
	}
}

func TestPropertyService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	propertyID := uuid.New()
	property := &models.PropertyDB{PropertyID: propertyID, UserID: ownerID}

	t.Run("owner deletes own listing", func(t *testing.T) {
		mockReader := services.NewMockPropertyReader(ctrl)
		mockWriter := services.NewMockPropertyWriter(ctrl)
		mockViews := services.NewMockViewWriter(ctrl)
		mockSearches := services.NewMockSearchWriter(ctrl)

		mockReader.EXPECT().
			GetByID(gomock.Any(), propertyID).
			Return(property, nil)
		mockWriter.EXPECT().
			Delete(gomock.Any(), propertyID).
			Return(true, nil)

		svc := services.NewPropertyService(mockReader, mockWriter, mockViews, mockSearches, nil)

		err := svc.Delete(context.Background(), &jwt.Claims{UserID: ownerID, IsLandlord: true}, propertyID)
		assert.NoError(t, err)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		mockReader := services.NewMockPropertyReader(ctrl)
		mockWriter := services.NewMockPropertyWriter(ctrl)
		mockViews := services.NewMockViewWriter(ctrl)
		mockSearches := services.NewMockSearchWriter(ctrl)

		mockReader.EXPECT().
			GetByID(gomock.Any(), propertyID).
			Return(property, nil)

		svc := services.NewPropertyService(mockReader, mockWriter, mockViews, mockSearches, nil)

		err := svc.Delete(context.Background(), &jwt.Claims{UserID: uuid.New(), IsLandlord: true}, propertyID)
		assert.EqualError(t, err, services.ErrNotOwner.Error())
	})
}

func TestPropertyService_IncrementView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	propertyID := uuid.New()
	claims := &jwt.Claims{UserID: userID, IsTenant: true}
	property := &models.PropertyDB{PropertyID: propertyID, UserID: uuid.New()}

	t.Run("view bumps counter and records audit row", func(t *testing.T) {
		mockReader := services.NewMockPropertyReader(ctrl)
		mockWriter := services.NewMockPropertyWriter(ctrl)
		mockViews := services.NewMockViewWriter(ctrl)
		mockSearches := services.NewMockSearchWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		mockReader.EXPECT().
			GetByID(gomock.Any(), propertyID).
			Return(property, nil)
		mockWriter.EXPECT().
			IncrementViews(gomock.Any(), propertyID).
			Return(7, nil)
		mockViews.EXPECT().
			Save(gomock.Any(), userID, propertyID).
			Return(&models.PropertyViewDB{ViewID: uuid.New(), UserID: userID, PropertyID: propertyID}, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := services.NewPropertyService(mockReader, mockWriter, mockViews, mockSearches, mockKafka)

		count, err := svc.IncrementView(context.Background(), claims, propertyID)
		assert.NoError(t, err)
		assert.Equal(t, 7, count)
	})

	t.Run("unknown property", func(t *testing.T) {
		mockReader := services.NewMockPropertyReader(ctrl)
		mockWriter := services.NewMockPropertyWriter(ctrl)
		mockViews := services.NewMockViewWriter(ctrl)
		mockSearches := services.NewMockSearchWriter(ctrl)

		mockReader.EXPECT().
			GetByID(gomock.Any(), propertyID).
			Return(nil, nil)

		svc := services.NewPropertyService(mockReader, mockWriter, mockViews, mockSearches, nil)

		_, err := svc.IncrementView(context.Background(), claims, propertyID)
		assert.EqualError(t, err, services.ErrPropertyNotFound.Error())
	})
}
