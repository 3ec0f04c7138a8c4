package errors

// Коды ошибок в формате CATEGORY_SPECIFIC_DETAIL.
// Фронтенд сопоставляет код с текстом сообщения.

const (
	// ==================== Аутентификация (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // требуется вход
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // неверный email/пароль
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // токен истёк
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // токен недействителен
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"       // токен отозван

	// ==================== Права доступа (AUTHZ_) ====================
	AuthzForbidden = "AUTHZ_FORBIDDEN"  // доступ запрещён
	AuthzAdminOnly = "AUTHZ_ADMIN_ONLY" // только для администратора

	// ==================== Валидация (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // неверные данные
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // неверный ID
	ValidationInvalidRange = "VALIDATION_INVALID_RANGE" // значение вне диапазона

	// ==================== Ресурсы (RESOURCE_) ====================
	ResourceNotFound    = "RESOURCE_NOT_FOUND"   // ресурс не найден
	ResourceUnavailable = "RESOURCE_UNAVAILABLE" // ресурс временно недоступен

	// ==================== Каталог (CATALOG_) ====================
	ProductNotFound  = "CATALOG_PRODUCT_NOT_FOUND"  // товар не найден
	CategoryNotFound = "CATALOG_CATEGORY_NOT_FOUND" // категория не найдена
	ExampleNotFound  = "CATALOG_EXAMPLE_NOT_FOUND"  // работа не найдена
	SectionNotFound  = "CATALOG_SECTION_NOT_FOUND"  // раздел не найден
	SectionUnknown   = "CATALOG_SECTION_UNKNOWN"    // неизвестный раздел

	// ==================== Загрузка файлов (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // неверный тип файла
	UploadFailed          = "UPLOAD_FAILED"            // ошибка загрузки

	// ==================== Внутренние ошибки (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // ошибка сервера
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // ошибка БД
)
