// internals/features/users/auth/service/auth_service.go
package service

import (
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"igrejaku_backend/internals/configs"
	"igrejaku_backend/internals/constants"
	tenancyService "igrejaku_backend/internals/features/churches/tenancy/service"
	authDTO "igrejaku_backend/internals/features/users/auth/dto"
	authRepo "igrejaku_backend/internals/features/users/auth/repository"
	userModel "igrejaku_backend/internals/features/users/user/model"
	helper "igrejaku_backend/internals/helpers"
)

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}

	input.UserEmail = NormalizeEmail(input.UserEmail)
	input.UserName = strings.TrimSpace(input.UserName)
	if input.UserName == "" || input.UserEmail == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Nome e email são obrigatórios")
	}
	if err := ValidatePasswordStrength(input.UserPassword); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	churchID, err := uuid.Parse(input.ChurchID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "church_id inválido")
	}

	passwordHash, err := HashPassword(input.UserPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao processar a senha")
	}

	// cadastro público entra sempre como congregado; promoção de role é ato
	// administrativo posterior
	user := userModel.UserModel{
		UserName:     input.UserName,
		UserEmail:    input.UserEmail,
		UserPassword: passwordHash,
		UserRole:     constants.RoleCongregado,
		UserChurchID: &churchID,
		UserIsActive: true,
	}
	if err := authRepo.CreateUser(db, &user); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusBadRequest, "Email já cadastrado")
		}
		log.Println("[ERROR] Falha ao criar usuário:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar usuário")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Cadastro realizado ✅", fiber.Map{
		"user_id": user.UserID,
	})
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)
	if input.Identifier == "" || input.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Identificador e senha são obrigatórios")
	}

	light, err := authRepo.FindUserByIdentifierLight(db, input.Identifier)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Usuário ou senha incorretos")
	}
	if !light.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Sua conta foi desativada. Fale com o administrador.")
	}
	if err := CheckPasswordHash(light.UserPassword, input.Password); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Usuário ou senha incorretos")
	}

	user, err := authRepo.FindUserByID(db, light.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar usuário")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.GoogleLoginRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "ID Token do Google inválido")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao decodificar o ID Token")
	}

	user, err := authRepo.FindUserByGoogleID(db, claimSet.Sub)
	if err != nil {
		// primeiro acesso via Google: vincula por email se já existir conta
		if existing, ferr := authRepo.FindUserByEmail(db, NormalizeEmail(claimSet.Email)); ferr == nil {
			googleID := claimSet.Sub
			if uerr := db.Model(existing).Update("user_google_id", &googleID).Error; uerr != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao vincular conta Google")
			}
			user = existing
		} else {
			// conta Google sem cadastro prévio precisa de uma igreja
			return fiber.NewError(fiber.StatusNotFound, "Nenhuma conta para este Google ID. Faça o cadastro primeiro.")
		}
	}

	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Sua conta foi desativada. Fale com o administrador.")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken := rawAccessToken(c)

	if accessToken != "" {
		if err := authRepo.BlacklistToken(db, accessToken, resolveBlacklistTTL(accessToken)); err != nil {
			log.Printf("[WARN] Falha ao colocar token na blacklist: %v", err)
		}
	} else {
		log.Println("[INFO] Logout sem access token; só limpa cookies (idempotente)")
	}

	// revoga o refresh da sessão e derruba o override de igreja do superadmin
	if rt := strings.TrimSpace(c.Cookies("refresh_token")); rt != "" {
		if secret, err := getRefreshSecret(); err == nil {
			_ = authRepo.RevokeRefreshTokenByHash(db, computeRefreshHash(rt, secret))
		}
	}
	if raw, ok := c.Locals(helper.LocalsUserID).(string); ok {
		if userID, err := uuid.Parse(raw); err == nil {
			tenancyService.NewScopeService(db).ClearOnLogout(userID)
		}
	}

	clearAuthCookies(c)
	return helper.Success(c, "Logout realizado", nil)
}

func rawAccessToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if fields := strings.Fields(auth); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		return fields[1]
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

// TTL da blacklist = tempo restante do token + folga; tokens já expirados
// ficam 1 minuto só por segurança de replay imediato.
func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				if until := time.Until(time.Unix(int64(exp), 0)); until > 0 {
					return until + time.Minute
				}
				return time.Minute
			}
		}
	}
	return ttl
}
