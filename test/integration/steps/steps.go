//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dreamwell/backend/internal/application/usecase/admin"
	"github.com/dreamwell/backend/internal/application/usecase/analytics"
	"github.com/dreamwell/backend/internal/application/usecase/auth"
	"github.com/dreamwell/backend/internal/application/usecase/dream"
	"github.com/dreamwell/backend/internal/application/usecase/mood"
	"github.com/dreamwell/backend/internal/application/usecase/support"
	"github.com/dreamwell/backend/internal/application/usecase/user"
	"github.com/dreamwell/backend/internal/infra/server/router"
	"github.com/dreamwell/backend/internal/integration/adapters"
	"github.com/dreamwell/backend/internal/integration/email"
	"github.com/dreamwell/backend/internal/integration/entrypoint/controller"
	"github.com/dreamwell/backend/internal/integration/entrypoint/middleware"
	"github.com/dreamwell/backend/internal/integration/persistence"
	"github.com/dreamwell/backend/internal/integration/persistence/model"
	"github.com/dreamwell/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri             string
	headers         map[string]string
	client          *http.Client
	response        *response
	db              *mock.Db
	serverPort      int
	accessToken     string
	refreshToken    string
	resetToken      string
	expiredToken    string
	verifyToken     string
	currentUserID   uuid.UUID
	currentDreamID  uuid.UUID
	currentMoodID   uuid.UUID
	currentTicketID uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("dreamwell", map[string]any{
			"users":           &model.UserModel{},
			"refresh_tokens":  &model.RefreshTokenModel{},
			"dreams":          &model.DreamModel{},
			"interpretations": &model.InterpretationModel{},
			"mood_entries":    &model.MoodEntryModel{},
			"support_tickets": &model.SupportTicketModel{},
			"system_settings": &model.SystemSettingModel{},
			"email_queue":     &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^a deactivated user exists with email "([^"]*)"$`, test.aDeactivatedUserExistsWithEmail)
	ctx.Given(`^an admin user exists with email "([^"]*)"$`, test.anAdminUserExistsWithEmail)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^an expired refresh token exists for the user$`, test.anExpiredRefreshTokenExistsForTheUser)
	ctx.Given(`^a verification token exists for "([^"]*)"$`, test.aVerificationTokenExistsFor)
	ctx.Given(`^an expired verification token exists for "([^"]*)"$`, test.anExpiredVerificationTokenExistsFor)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists for "([^"]*)"$`, test.anExpiredPasswordResetTokenExistsFor)

	// Journal setup steps
	ctx.Given(`^a dream exists with title "([^"]*)"$`, test.aDreamExistsWithTitle)
	ctx.Given(`^a flagged dream exists with title "([^"]*)"$`, test.aFlaggedDreamExistsWithTitle)
	ctx.Given(`^a mood entry exists for "([^"]*)" with mood "([^"]*)"$`, test.aMoodEntryExistsForWithMood)
	ctx.Given(`^a support ticket exists with subject "([^"]*)"$`, test.aSupportTicketExistsWithSubject)
	ctx.Given(`^a system setting "([^"]*)" exists with value "([^"]*)"$`, test.aSystemSettingExistsWithValue)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response list should have (\d+) items$`, test.theResponseListShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.verifyToken = ""
	t.currentUserID = uuid.Nil
	t.currentDreamID = uuid.Nil
	t.currentMoodID = uuid.Nil
	t.currentTicketID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			refreshRepo := persistence.NewRefreshTokenRepository(testDB.DbConn)
			dreamRepo := persistence.NewDreamRepository(testDB.DbConn)
			interpretationRepo := persistence.NewInterpretationRepository(testDB.DbConn)
			moodRepo := persistence.NewMoodEntryRepository(testDB.DbConn)
			ticketRepo := persistence.NewSupportTicketRepository(testDB.DbConn)
			settingsRepo := persistence.NewSystemSettingsRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Create adapters/services. The interpreter runs without an API
			// key, so dreams are stored without interpretations. Emails are
			// queued but no worker drains the queue.
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute)
			interpreter := adapters.NewGeminiService("", "gemini-1.5-flash")
			cache := adapters.NewRedisCache(mock.NewRedis())
			emailService := email.NewService(emailQueueRepo, "http://localhost:3000")

			// Create auth use cases
			signupUseCase := auth.NewSignupUseCase(userRepo, refreshRepo, passwordService, tokenService, emailService, "http://localhost:3000", 7*24*time.Hour)
			loginUseCase := auth.NewLoginUseCase(userRepo, refreshRepo, passwordService, tokenService, 7*24*time.Hour)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, refreshRepo, tokenService)
			verifyEmailUseCase := auth.NewVerifyEmailUseCase(userRepo)
			forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, emailService, "http://localhost:3000")
			resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService)

			// Create profile use cases
			getProfileUseCase := user.NewGetProfileUseCase(userRepo)
			updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)
			changePasswordUseCase := user.NewChangePasswordUseCase(userRepo, passwordService)
			deleteAccountUseCase := user.NewDeleteAccountUseCase(userRepo, refreshRepo, dreamRepo, moodRepo, ticketRepo, emailQueueRepo)

			// Create dream journal use cases
			interpretUseCase := dream.NewInterpretDreamUseCase(dreamRepo, interpretationRepo, interpreter)
			createDreamUseCase := dream.NewCreateDreamUseCase(dreamRepo, interpretUseCase)
			listDreamsUseCase := dream.NewListDreamsUseCase(dreamRepo, interpretationRepo)
			getDreamUseCase := dream.NewGetDreamUseCase(dreamRepo, interpretationRepo)
			updateDreamUseCase := dream.NewUpdateDreamUseCase(dreamRepo)
			deleteDreamUseCase := dream.NewDeleteDreamUseCase(dreamRepo)

			// Create mood log use cases
			logMoodUseCase := mood.NewLogMoodUseCase(moodRepo)
			listMoodsUseCase := mood.NewListMoodsUseCase(moodRepo)
			updateMoodUseCase := mood.NewUpdateMoodUseCase(moodRepo)
			deleteMoodUseCase := mood.NewDeleteMoodUseCase(moodRepo)

			// Create analytics use cases
			userAnalyticsUseCase := analytics.NewUserAnalyticsUseCase(dreamRepo, interpretationRepo, cache, 5*time.Minute)
			exportDataUseCase := analytics.NewExportDataUseCase(userRepo, dreamRepo, interpretationRepo, moodRepo)
			systemAnalyticsUseCase := analytics.NewSystemAnalyticsUseCase(userRepo, dreamRepo, interpretationRepo, ticketRepo)

			// Create support use cases
			createTicketUseCase := support.NewCreateTicketUseCase(ticketRepo)
			listTicketsUseCase := support.NewListTicketsUseCase(ticketRepo)
			manageTicketsUseCase := support.NewManageTicketsUseCase(ticketRepo, userRepo, emailService)

			// Create admin use cases
			manageUsersUseCase := admin.NewManageUsersUseCase(userRepo, refreshRepo, dreamRepo, moodRepo)
			flaggedDreamsUseCase := admin.NewFlaggedDreamsUseCase(dreamRepo)
			systemSettingsUseCase := admin.NewSystemSettingsUseCase(settingsRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			authController := controller.NewAuthController(
				signupUseCase,
				loginUseCase,
				refreshTokenUseCase,
				verifyEmailUseCase,
				forgotPasswordUseCase,
				resetPasswordUseCase,
			)

			userController := controller.NewUserController(
				getProfileUseCase,
				updateProfileUseCase,
				changePasswordUseCase,
				deleteAccountUseCase,
			)

			dreamController := controller.NewDreamController(
				createDreamUseCase,
				listDreamsUseCase,
				getDreamUseCase,
				updateDreamUseCase,
				deleteDreamUseCase,
				interpretUseCase,
				userAnalyticsUseCase,
			)

			moodController := controller.NewMoodController(
				logMoodUseCase,
				listMoodsUseCase,
				updateMoodUseCase,
				deleteMoodUseCase,
				userAnalyticsUseCase,
			)

			analyticsController := controller.NewAnalyticsController(
				userAnalyticsUseCase,
				exportDataUseCase,
			)

			supportController := controller.NewSupportController(
				createTicketUseCase,
				listTicketsUseCase,
			)

			adminController := controller.NewAdminController(
				manageUsersUseCase,
				flaggedDreamsUseCase,
				systemSettingsUseCase,
				systemAnalyticsUseCase,
				manageTicketsUseCase,
			)

			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				userController,
				dreamController,
				moodController,
				analyticsController,
				supportController,
				adminController,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "USER", true)
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "USER", true)
}

func (t *testContext) aDeactivatedUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "USER", false)
}

func (t *testContext) anAdminUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "ADMIN", true)
}

func (t *testContext) createUser(email, password, role string, active bool) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	userModel := &model.UserModel{
		ID:                   userID,
		Name:                 "Test User",
		Email:                email,
		PasswordHash:         hashPassword(password),
		Role:                 role,
		IsActive:             active,
		IsEmailVerified:      true,
		Theme:                "light",
		NotificationsEnabled: true,
		Language:             "en",
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	return t.db.DbConn.Create(userModel).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("id = ?", t.currentUserID).First(&userModel).Error; err != nil {
		return fmt.Errorf("no user to log in: %w", err)
	}
	return t.issueTokens(&userModel)
}

func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if createErr := t.createUser(email, "DefaultPass123!", "USER", true); createErr != nil {
			return createErr
		}
		if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
			return fmt.Errorf("user not found after create: %w", err)
		}
	}

	t.currentUserID = userModel.ID
	return t.issueTokens(&userModel)
}

// issueTokens signs an access token the same way the token service does
// and stores an opaque refresh token row for the user.
func (t *testContext) issueTokens(userModel *model.UserModel) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id": userModel.ID.String(),
		"role":    userModel.Role,
		"iss":     "dreamwell",
		"sub":     userModel.Email,
		"iat":     jwt.NewNumericDate(now),
		"exp":     jwt.NewNumericDate(now.Add(15 * time.Minute)),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	t.refreshToken = fmt.Sprintf("test-refresh-token-%s", uuid.New().String())
	refreshTokenModel := &model.RefreshTokenModel{
		ID:        uuid.New(),
		UserID:    userModel.ID,
		Token:     t.refreshToken,
		ExpiresAt: now.Add(7 * 24 * time.Hour),
		CreatedAt: now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) anExpiredRefreshTokenExistsForTheUser() error {
	now := time.Now().UTC()
	t.refreshToken = fmt.Sprintf("expired-refresh-token-%s", uuid.New().String())

	refreshTokenModel := &model.RefreshTokenModel{
		ID:        uuid.New(),
		UserID:    t.currentUserID,
		Token:     t.refreshToken,
		ExpiresAt: now.Add(-1 * time.Hour),
		CreatedAt: now.Add(-2 * time.Hour),
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) aVerificationTokenExistsFor(email string) error {
	t.verifyToken = fmt.Sprintf("test-verify-token-%s", uuid.New().String())
	return t.setVerificationToken(email, t.verifyToken, time.Now().UTC().Add(24*time.Hour))
}

func (t *testContext) anExpiredVerificationTokenExistsFor(email string) error {
	t.verifyToken = fmt.Sprintf("expired-verify-token-%s", uuid.New().String())
	return t.setVerificationToken(email, t.verifyToken, time.Now().UTC().Add(-1*time.Hour))
}

func (t *testContext) setVerificationToken(email, token string, expiry time.Time) error {
	result := t.db.DbConn.Model(&model.UserModel{}).Where("email = ?", email).Updates(map[string]any{
		"is_email_verified":         false,
		"email_verification_token":  token,
		"email_verification_expiry": expiry,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found: %s", email)
	}
	return nil
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())
	return t.setResetToken(email, t.resetToken, time.Now().UTC().Add(1*time.Hour))
}

func (t *testContext) anExpiredPasswordResetTokenExistsFor(email string) error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())
	return t.setResetToken(email, t.expiredToken, time.Now().UTC().Add(-1*time.Hour))
}

func (t *testContext) setResetToken(email, token string, expiry time.Time) error {
	result := t.db.DbConn.Model(&model.UserModel{}).Where("email = ?", email).Updates(map[string]any{
		"password_reset_token":  token,
		"password_reset_expiry": expiry,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found: %s", email)
	}
	return nil
}

func (t *testContext) aDreamExistsWithTitle(title string) error {
	return t.createDream(title, false)
}

func (t *testContext) aFlaggedDreamExistsWithTitle(title string) error {
	return t.createDream(title, true)
}

func (t *testContext) createDream(title string, flagged bool) error {
	dreamID := uuid.New()
	t.currentDreamID = dreamID

	now := time.Now().UTC()
	dreamModel := &model.DreamModel{
		ID:           dreamID,
		UserID:       t.currentUserID,
		Title:        title,
		DreamText:    "I was falling through clouds that turned into water.",
		Tags:         pq.StringArray{"falling", "water"},
		MoodAtWake:   "ANXIOUS",
		SleepQuality: 3,
		DreamDate:    now.Truncate(24 * time.Hour),
		IsPrivate:    true,
		IsFlagged:    flagged,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if flagged {
		dreamModel.FlagReason = "self-harm"
	}

	return t.db.DbConn.Create(dreamModel).Error
}

func (t *testContext) aMoodEntryExistsForWithMood(entryDate, moodValue string) error {
	date, err := time.Parse("2006-01-02", entryDate)
	if err != nil {
		return fmt.Errorf("invalid entry date '%s': %w", entryDate, err)
	}

	moodID := uuid.New()
	t.currentMoodID = moodID

	moodModel := &model.MoodEntryModel{
		ID:        moodID,
		UserID:    t.currentUserID,
		EntryDate: date,
		Mood:      moodValue,
		Notes:     "slept through the night",
		CreatedAt: time.Now().UTC(),
	}

	return t.db.DbConn.Create(moodModel).Error
}

func (t *testContext) aSupportTicketExistsWithSubject(subject string) error {
	ticketID := uuid.New()
	t.currentTicketID = ticketID

	now := time.Now().UTC()
	ticketModel := &model.SupportTicketModel{
		ID:        ticketID,
		UserID:    t.currentUserID,
		Subject:   subject,
		Message:   "The export download never finishes.",
		Status:    "OPEN",
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(ticketModel).Error
}

func (t *testContext) aSystemSettingExistsWithValue(key, value string) error {
	settingModel := &model.SystemSettingModel{
		ID:        uuid.New(),
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	return t.db.DbConn.Create(settingModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replaceTokenPlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replaceTokenPlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replaceTokenPlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replaceTokenPlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{verification_token}}", t.verifyToken)
	content = strings.ReplaceAll(content, "{{dream_id}}", t.currentDreamID.String())
	content = strings.ReplaceAll(content, "{{mood_id}}", t.currentMoodID.String())
	content = strings.ReplaceAll(content, "{{ticket_id}}", t.currentTicketID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	if bodyMap, ok := responseBody.(map[string]any); ok {
		t.captureIdentifiers(bodyMap)
	}

	return nil
}

// captureIdentifiers keeps tokens and resource IDs from responses so
// later steps can reference them through placeholders.
func (t *testContext) captureIdentifiers(body map[string]any) {
	if token, ok := body["accessToken"].(string); ok && token != "" {
		t.accessToken = token
	}
	if token, ok := body["refreshToken"].(string); ok && token != "" {
		t.refreshToken = token
	}

	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	switch {
	case hasKey(body, "dreamDate"):
		t.currentDreamID = id
	case hasKey(body, "entryDate"):
		t.currentMoodID = id
	case hasKey(body, "subject"):
		t.currentTicketID = id
	}
}

func hasKey(body map[string]any, key string) bool {
	_, ok := body[key]
	return ok
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	switch t.response.body.(type) {
	case map[string]any, []any:
		return nil
	}
	return fmt.Errorf("response is not JSON: %v", t.response.body)
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseListShouldHaveItems(quantity int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	list, ok := t.response.body.([]any)
	if !ok {
		return fmt.Errorf("response is not a JSON array: %v", t.response.body)
	}
	if len(list) != quantity {
		return fmt.Errorf("expected %d items, got %d", quantity, len(list))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = object

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
