package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyAddFiles           = "add_files"
	KeyAddFolder          = "add_folder"
	KeyClearList          = "clear_list"
	KeyOutputFolder       = "output_folder"
	KeyOutputFormat       = "output_format"
	KeyBrowse             = "browse"
	KeyStartExtraction    = "start_extraction"
	KeyCancelExtraction   = "cancel_extraction"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyReady              = "ready"
	KeyFFmpegFound        = "ffmpeg_found"
	KeyFFmpegMissing      = "ffmpeg_missing"
	KeyNoFilesSelected    = "no_files_selected"
	KeyNoVideosFound      = "no_videos_found"
	KeyScanErrors         = "scan_errors"
	KeyFilesLocked        = "files_locked"
	KeyProcessing         = "processing"
	KeyExtractionComplete = "extraction_complete"
	KeyPartialSuccess     = "partial_success"
	KeyExtractionFailed   = "extraction_failed"
	KeyExtractionStopped  = "extraction_stopped"
	KeyPlayFile           = "play_file"
	KeyOpenFolder         = "open_folder"
	KeyClose              = "close"
	KeyRemove             = "remove"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyRecursiveScan      = "recursive_scan"
	KeyAutoOpenFolder     = "auto_open_folder"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
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
		KeyAppTitle:           "SpeedTake Audio Extractor",
		KeyAddFiles:           "Add Files",
		KeyAddFolder:          "Add Folder",
		KeyClearList:          "Clear List",
		KeyOutputFolder:       "Output Folder",
		KeyOutputFormat:       "Output Format",
		KeyBrowse:             "Browse",
		KeyStartExtraction:    "Start Extraction",
		KeyCancelExtraction:   "Cancel",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyReady:              "Ready",
		KeyFFmpegFound:        "FFmpeg found - ready to extract audio",
		KeyFFmpegMissing:      "WARNING: FFmpeg not found! Please install it and ensure it's on the PATH.",
		KeyNoFilesSelected:    "Please select one or more video files first.",
		KeyNoVideosFound:      "No video files found in the selected folder.",
		KeyScanErrors:         "Some folder entries could not be read:",
		KeyFilesLocked:        "The file list cannot change while extraction is running.",
		KeyProcessing:         "Processing %d/%d: %s",
		KeyExtractionComplete: "Success! Extracted audio from all %d files.",
		KeyPartialSuccess:     "Completed with issues: %d/%d successful.",
		KeyExtractionFailed:   "Failed to extract audio from any of the %d files.",
		KeyExtractionStopped:  "Extraction cancelled: %d of %d files done.",
		KeyPlayFile:           "Play File",
		KeyOpenFolder:         "Open Folder",
		KeyClose:              "Close",
		KeyRemove:             "Remove",
		KeyErrorOpeningFile:   "Error opening file",
		KeyRecursiveScan:      "Scan folders recursively",
		KeyAutoOpenFolder:     "Open output folder when done",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "SpeedTake Извлечение аудио",
		KeyAddFiles:           "Добавить файлы",
		KeyAddFolder:          "Добавить папку",
		KeyClearList:          "Очистить список",
		KeyOutputFolder:       "Папка вывода",
		KeyOutputFormat:       "Формат вывода",
		KeyBrowse:             "Обзор",
		KeyStartExtraction:    "Начать извлечение",
		KeyCancelExtraction:   "Отмена",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyReady:              "Готово",
		KeyFFmpegFound:        "FFmpeg найден - можно извлекать аудио",
		KeyFFmpegMissing:      "ВНИМАНИЕ: FFmpeg не найден! Установите его и добавьте в PATH.",
		KeyNoFilesSelected:    "Сначала выберите один или несколько видеофайлов.",
		KeyNoVideosFound:      "В выбранной папке не найдено видеофайлов.",
		KeyScanErrors:         "Некоторые элементы папки не удалось прочитать:",
		KeyFilesLocked:        "Список файлов нельзя менять во время извлечения.",
		KeyProcessing:         "Обработка %d/%d: %s",
		KeyExtractionComplete: "Успех! Аудио извлечено из всех %d файлов.",
		KeyPartialSuccess:     "Завершено с ошибками: %d/%d успешно.",
		KeyExtractionFailed:   "Не удалось извлечь аудио ни из одного из %d файлов.",
		KeyExtractionStopped:  "Извлечение отменено: готово %d из %d файлов.",
		KeyPlayFile:           "Открыть файл",
		KeyOpenFolder:         "Открыть папку",
		KeyClose:              "Закрыть",
		KeyRemove:             "Удалить",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyRecursiveScan:      "Сканировать папки рекурсивно",
		KeyAutoOpenFolder:     "Открывать папку вывода по завершении",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "SpeedTake Extrator de Áudio",
		KeyAddFiles:           "Adicionar Arquivos",
		KeyAddFolder:          "Adicionar Pasta",
		KeyClearList:          "Limpar Lista",
		KeyOutputFolder:       "Pasta de Saída",
		KeyOutputFormat:       "Formato de Saída",
		KeyBrowse:             "Navegar",
		KeyStartExtraction:    "Iniciar Extração",
		KeyCancelExtraction:   "Cancelar",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyReady:              "Pronto",
		KeyFFmpegFound:        "FFmpeg encontrado - pronto para extrair áudio",
		KeyFFmpegMissing:      "AVISO: FFmpeg não encontrado! Instale-o e garanta que está no PATH.",
		KeyNoFilesSelected:    "Selecione um ou mais arquivos de vídeo primeiro.",
		KeyNoVideosFound:      "Nenhum arquivo de vídeo encontrado na pasta selecionada.",
		KeyScanErrors:         "Algumas entradas da pasta não puderam ser lidas:",
		KeyFilesLocked:        "A lista de arquivos não pode mudar durante a extração.",
		KeyProcessing:         "Processando %d/%d: %s",
		KeyExtractionComplete: "Sucesso! Áudio extraído de todos os %d arquivos.",
		KeyPartialSuccess:     "Concluído com problemas: %d/%d com sucesso.",
		KeyExtractionFailed:   "Falha ao extrair áudio de todos os %d arquivos.",
		KeyExtractionStopped:  "Extração cancelada: %d de %d arquivos prontos.",
		KeyPlayFile:           "Reproduzir Arquivo",
		KeyOpenFolder:         "Abrir Pasta",
		KeyClose:              "Fechar",
		KeyRemove:             "Remover",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeyRecursiveScan:      "Verificar pastas recursivamente",
		KeyAutoOpenFolder:     "Abrir pasta de saída ao concluir",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
	}
}
