package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           7,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       1,
	}
}

func TestService_LoginUser(t *testing.T) {
	cfg := &config.Config{SecretKey: "chave_de_teste"}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(userRepo *mocks.MockUserRepository)
		hasError bool
	}{
		{
			name:     "Login com credenciais válidas retorna token",
			email:    "Ana@Example.com ",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(testUser(t, "senha123"), nil)
			},
			hasError: false,
		},
		{
			name:     "Senha incorreta é rejeitada",
			email:    "ana@example.com",
			password: "senha_errada",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(testUser(t, "senha123"), nil)
			},
			hasError: true,
		},
		{
			name:     "Usuário desativado não pode logar",
			email:    "ana@example.com",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository) {
				user := testUser(t, "senha123")
				user.Active = false
				userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(user, nil)
			},
			hasError: true,
		},
		{
			name:     "Usuário inexistente",
			email:    "nadie@example.com",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("nadie@example.com").Return(nil, nil)
			},
			hasError: true,
		},
		{
			name:     "Email e senha são obrigatórios",
			email:    "",
			password: "",
			setup:    func(userRepo *mocks.MockUserRepository) {},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(mockUserRepo)

			service := NewService(mockUserRepo, cfg)

			token, err := service.LoginUser(tt.email, tt.password)

			if tt.hasError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	cfg := &config.Config{SecretKey: "chave_de_teste"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockUserRepo.EXPECT().GetUserByEmail("ana@example.com").Return(testUser(t, "senha123"), nil)

	service := NewService(mockUserRepo, cfg)

	token, err := service.LoginUser("ana@example.com", "senha123")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Ana", claims.UserName)
	assert.Equal(t, "ana@example.com", claims.UserEmail)
	assert.Equal(t, 1, claims.UserRoleID)

	// Token assinado com outro segredo é rejeitado
	otherService := NewService(mockUserRepo, &config.Config{SecretKey: "outra_chave"})
	_, err = otherService.ValidateToken(token)
	assert.Error(t, err)

	_, err = service.ValidateToken("token_invalido")
	assert.Error(t, err)
}

func TestService_CreateUser(t *testing.T) {
	cfg := &config.Config{SecretKey: "chave_de_teste"}

	t.Run("Cria usuário com senha hasheada e role padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		mockUserRepo.EXPECT().GetUserByEmail("nueva@example.com").Return(nil, nil)
		mockUserRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) error {
			assert.Equal(t, "nueva@example.com", user.Email)
			assert.NotEqual(t, "senha123", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
			assert.Equal(t, 3, user.RoleID)
			assert.False(t, user.Active)
			return nil
		})

		service := NewService(mockUserRepo, cfg)

		user, err := service.CreateUser(&domain.User{
			Name:         "Nueva",
			Email:        " Nueva@Example.com",
			PasswordHash: "senha123",
		})
		require.NoError(t, err)
		assert.Equal(t, "nueva@example.com", user.Email)
	})

	t.Run("Email já cadastrado é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		mockUserRepo.EXPECT().GetUserByEmail("ana@example.com").Return(testUser(t, "senha123"), nil)

		service := NewService(mockUserRepo, cfg)

		_, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Email:        "ana@example.com",
			PasswordHash: "senha123",
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Dados obrigatórios ausentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockUserRepository(ctrl), cfg)

		_, err := service.CreateUser(&domain.User{Email: "solo@example.com"})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}
