package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/andreionishchenko/Final-proekt-D/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		email     string
		group     string
		mockSetup func(reader *services.MockUserReader, writer *services.MockUserWriter)
		wantErr   error
	}{
		{
			name:  "successful registration as tenant by default",
			email: "alice@example.com",
			group: "",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(nil, nil)
				writer.EXPECT().
					Save(gomock.Any(), "alice@example.com", "alice", gomock.Any(), false, true).
					Return(uuid.New(), nil)
			},
		},
		{
			name:  "landlord group is case-insensitive",
			email: "bob@example.com",
			group: "landlord",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "bob@example.com").
					Return(nil, nil)
				writer.EXPECT().
					Save(gomock.Any(), "bob@example.com", "alice", gomock.Any(), true, false).
					Return(uuid.New(), nil)
			},
		},
		{
			name:    "unknown group fails before any read or write",
			email:   "carol@example.com",
			group:   "Admin",
			wantErr: services.ErrRoleNotFound,
		},
		{
			name:  "email already exists",
			email: "dave@example.com",
			group: "Tenant",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "dave@example.com").
					Return(&models.UserDB{UserID: uuid.New()}, nil)
			},
			wantErr: services.ErrEmailAlreadyExists,
		},
		{
			name:  "reader error",
			email: "eve@example.com",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "eve@example.com").
					Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockTokenPairGenerator(ctrl)
			mockTokens := services.NewMockRefreshTokenStore(ctrl)

			if tt.mockSetup != nil {
				tt.mockSetup(mockReader, mockWriter)
			}

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockTokens)

			err := svc.Register(context.Background(), tt.email, "alice", "pass123", tt.group)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()

	tests := []struct {
		name       string
		email      string
		password   string
		mockSetup  func(reader *services.MockUserReader, gen *services.MockTokenPairGenerator, tokens *services.MockRefreshTokenStore)
		wantAccess string
		wantErr    error
	}{
		{
			name:     "successful login stores refresh token",
			email:    "alice@example.com",
			password: password,
			mockSetup: func(reader *services.MockUserReader, gen *services.MockTokenPairGenerator, tokens *services.MockRefreshTokenStore) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(&models.UserDB{UserID: userID, PasswordHash: string(hashed), IsTenant: true}, nil)
				gen.EXPECT().
					GeneratePair(gomock.Any(), userID, false, true).
					Return("access123", "refresh123", nil)
				tokens.EXPECT().
					Save(gomock.Any(), userID, "refresh123").
					Return(nil)
			},
			wantAccess: "access123",
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: password,
			mockSetup: func(reader *services.MockUserReader, gen *services.MockTokenPairGenerator, tokens *services.MockRefreshTokenStore) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "ghost@example.com").
					Return(nil, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password yields the same error as unknown email",
			email:    "alice@example.com",
			password: "wrong",
			mockSetup: func(reader *services.MockUserReader, gen *services.MockTokenPairGenerator, tokens *services.MockRefreshTokenStore) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(&models.UserDB{UserID: userID, PasswordHash: string(hashed)}, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "reader error",
			email:    "alice@example.com",
			password: password,
			mockSetup: func(reader *services.MockUserReader, gen *services.MockTokenPairGenerator, tokens *services.MockRefreshTokenStore) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockTokenPairGenerator(ctrl)
			mockTokens := services.NewMockRefreshTokenStore(ctrl)

			if tt.mockSetup != nil {
				tt.mockSetup(mockReader, mockJWT, mockTokens)
			}

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockTokens)

			access, refresh, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, access)
				assert.Empty(t, refresh)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantAccess, access)
				assert.NotEmpty(t, refresh)
			}
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name      string
		token     string
		mockSetup func(gen *services.MockTokenPairGenerator, tokens *services.MockRefreshTokenStore)
		wantErr   error
	}{
		{
			name:  "successful rotation",
			token: "refresh123",
			mockSetup: func(gen *services.MockTokenPairGenerator, tokens *services.MockRefreshTokenStore) {
				gen.EXPECT().
					GetClaims(gomock.Any(), "refresh123").
					Return(&jwt.Claims{UserID: userID, IsTenant: true, TokenType: jwt.TokenTypeRefresh}, nil)
				tokens.EXPECT().
					Get(gomock.Any(), userID).
					Return("refresh123", nil)
				gen.EXPECT().
					GeneratePair(gomock.Any(), userID, false, true).
					Return("access456", "refresh456", nil)
				tokens.EXPECT().
					Save(gomock.Any(), userID, "refresh456").
					Return(nil)
			},
		},
		{
			name:  "unparseable token",
			token: "garbage",
			mockSetup: func(gen *services.MockTokenPairGenerator, tokens *services.MockRefreshTokenStore) {
				gen.EXPECT().
					GetClaims(gomock.Any(), "garbage").
					Return(nil, errors.New("token is malformed"))
			},
			wantErr: services.ErrInvalidRefresh,
		},
		{
			name:  "access token rejected",
			token: "access123",
			mockSetup: func(gen *services.MockTokenPairGenerator, tokens *services.MockRefreshTokenStore) {
				gen.EXPECT().
					GetClaims(gomock.Any(), "access123").
					Return(&jwt.Claims{UserID: userID, TokenType: jwt.TokenTypeAccess}, nil)
			},
			wantErr: services.ErrInvalidRefresh,
		},
		{
			name:  "token does not match stored one",
			token: "refresh123",
			mockSetup: func(gen *services.MockTokenPairGenerator, tokens *services.MockRefreshTokenStore) {
				gen.EXPECT().
					GetClaims(gomock.Any(), "refresh123").
					Return(&jwt.Claims{UserID: userID, TokenType: jwt.TokenTypeRefresh}, nil)
				tokens.EXPECT().
					Get(gomock.Any(), userID).
					Return("refresh999", nil)
			},
			wantErr: services.ErrInvalidRefresh,
		},
		{
			name:  "no stored token",
			token: "refresh123",
			mockSetup: func(gen *services.MockTokenPairGenerator, tokens *services.MockRefreshTokenStore) {
				gen.EXPECT().
					GetClaims(gomock.Any(), "refresh123").
					Return(&jwt.Claims{UserID: userID, TokenType: jwt.TokenTypeRefresh}, nil)
				tokens.EXPECT().
					Get(gomock.Any(), userID).
					Return("", nil)
			},
			wantErr: services.ErrInvalidRefresh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockTokenPairGenerator(ctrl)
			mockTokens := services.NewMockRefreshTokenStore(ctrl)

			if tt.mockSetup != nil {
				tt.mockSetup(mockJWT, mockTokens)
			}

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockTokens)

			access, refresh, err := svc.Refresh(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, access)
				assert.Empty(t, refresh)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access456", access)
				assert.Equal(t, "refresh456", refresh)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID, IsTenant: true, TokenType: jwt.TokenTypeAccess}

	t.Run("deletes the stored refresh token", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		mockJWT := services.NewMockTokenPairGenerator(ctrl)
		mockTokens := services.NewMockRefreshTokenStore(ctrl)

		mockTokens.EXPECT().
			Delete(gomock.Any(), userID).
			Return(nil)

		svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockTokens)
		assert.NoError(t, svc.Logout(context.Background(), claims))
	})

	t.Run("store error is propagated", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		mockJWT := services.NewMockTokenPairGenerator(ctrl)
		mockTokens := services.NewMockRefreshTokenStore(ctrl)

		mockTokens.EXPECT().
			Delete(gomock.Any(), userID).
			Return(errors.New("redis down"))

		svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockTokens)
		assert.EqualError(t, svc.Logout(context.Background(), claims), "redis down")
	})
}
