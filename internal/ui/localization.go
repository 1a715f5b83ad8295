package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySignIn             = "sign_in"
	KeyTokenTab           = "token_tab"
	KeyCredentialsTab     = "credentials_tab"
	KeyTokenPlaceholder   = "token_placeholder"
	KeyEmail              = "email"
	KeyPassword           = "password"
	KeyLogout             = "logout"
	KeySearchCourses      = "search_courses"
	KeyNoCourses          = "no_courses"
	KeyBack               = "back"
	KeySettings           = "settings"
	KeyLanguage           = "language"
	KeyBackendURL         = "backend_url"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyHelp               = "help"
	KeyHelpTitle          = "help_title"
	KeyHelpBody           = "help_body"
	KeyLoadingCurriculum  = "loading_curriculum"
	KeyChapter            = "chapter"
	KeyVideo              = "video"
	KeyResolving          = "resolving"
	KeyStarting           = "starting"
	KeyFailed             = "failed"
	KeyDRMProtected       = "drm_protected"
	KeyDRMLocked          = "drm_locked"
	KeyDefaultQuality     = "default_quality"
	KeyLoadingQualities   = "loading_qualities"
	KeySettingsSaved      = "settings_saved"
	KeyCourseIDPrefix     = "course_id_prefix"
	KeyRestartForLanguage = "restart_for_language"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "CourseDeck",
		KeySignIn:             "Sign In",
		KeyTokenTab:           "Access Token",
		KeyCredentialsTab:     "Email & Password",
		KeyTokenPlaceholder:   "Paste your access token",
		KeyEmail:              "Email",
		KeyPassword:           "Password",
		KeyLogout:             "Logout",
		KeySearchCourses:      "Search your courses...",
		KeyNoCourses:          "No courses found.",
		KeyBack:               "Back",
		KeySettings:           "Settings",
		KeyLanguage:           "Language",
		KeyBackendURL:         "Backend URL",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyHelp:               "How do I get a token?",
		KeyHelpTitle:          "Getting an access token",
		KeyHelpBody:           "Log in to the course site in your browser, open the developer tools, and copy the value of the access_token cookie. Paste it into the Access Token field. Alternatively, sign in with your email and password and the token is fetched for you.",
		KeyLoadingCurriculum:  "Fetching curriculum chapters...",
		KeyChapter:            "Chapter",
		KeyVideo:              "Video",
		KeyResolving:          "Resolving...",
		KeyStarting:           "Starting...",
		KeyFailed:             "Failed",
		KeyDRMProtected:       "DRM Protected",
		KeyDRMLocked:          "DRM locked",
		KeyDefaultQuality:     "Default",
		KeyLoadingQualities:   "Loading...",
		KeySettingsSaved:      "Settings saved",
		KeyCourseIDPrefix:     "ID",
		KeyRestartForLanguage: "Restart the app to fully apply the language change",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "CourseDeck",
		KeySignIn:             "Войти",
		KeyTokenTab:           "Токен доступа",
		KeyCredentialsTab:     "Email и пароль",
		KeyTokenPlaceholder:   "Вставьте токен доступа",
		KeyEmail:              "Email",
		KeyPassword:           "Пароль",
		KeyLogout:             "Выйти",
		KeySearchCourses:      "Поиск по курсам...",
		KeyNoCourses:          "Курсы не найдены.",
		KeyBack:               "Назад",
		KeySettings:           "Настройки",
		KeyLanguage:           "Язык",
		KeyBackendURL:         "Адрес сервера",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyHelp:               "Где взять токен?",
		KeyHelpTitle:          "Получение токена доступа",
		KeyHelpBody:           "Войдите на сайт курсов в браузере, откройте инструменты разработчика и скопируйте значение cookie access_token. Вставьте его в поле токена. Либо войдите по email и паролю — токен будет получен автоматически.",
		KeyLoadingCurriculum:  "Загружаем главы курса...",
		KeyChapter:            "Глава",
		KeyVideo:              "Видео",
		KeyResolving:          "Получение ссылки...",
		KeyStarting:           "Запуск...",
		KeyFailed:             "Ошибка",
		KeyDRMProtected:       "Защищено DRM",
		KeyDRMLocked:          "DRM блокировка",
		KeyDefaultQuality:     "По умолчанию",
		KeyLoadingQualities:   "Загрузка...",
		KeySettingsSaved:      "Настройки сохранены",
		KeyCourseIDPrefix:     "ID",
		KeyRestartForLanguage: "Перезапустите приложение для полного применения языка",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "CourseDeck",
		KeySignIn:             "Entrar",
		KeyTokenTab:           "Token de Acesso",
		KeyCredentialsTab:     "Email e Senha",
		KeyTokenPlaceholder:   "Cole seu token de acesso",
		KeyEmail:              "Email",
		KeyPassword:           "Senha",
		KeyLogout:             "Sair",
		KeySearchCourses:      "Pesquisar seus cursos...",
		KeyNoCourses:          "Nenhum curso encontrado.",
		KeyBack:               "Voltar",
		KeySettings:           "Configurações",
		KeyLanguage:           "Idioma",
		KeyBackendURL:         "URL do Servidor",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyHelp:               "Como obter um token?",
		KeyHelpTitle:          "Obtendo um token de acesso",
		KeyHelpBody:           "Faça login no site de cursos no navegador, abra as ferramentas de desenvolvedor e copie o valor do cookie access_token. Cole-o no campo de token. Ou entre com email e senha e o token será obtido automaticamente.",
		KeyLoadingCurriculum:  "Buscando capítulos do curso...",
		KeyChapter:            "Capítulo",
		KeyVideo:              "Vídeo",
		KeyResolving:          "Resolvendo...",
		KeyStarting:           "Iniciando...",
		KeyFailed:             "Falhou",
		KeyDRMProtected:       "Protegido por DRM",
		KeyDRMLocked:          "Bloqueado por DRM",
		KeyDefaultQuality:     "Padrão",
		KeyLoadingQualities:   "Carregando...",
		KeySettingsSaved:      "Configurações salvas",
		KeyCourseIDPrefix:     "ID",
		KeyRestartForLanguage: "Reinicie o aplicativo para aplicar totalmente o idioma",
	}
}
