package domain

import (
	"errors"
	"sort"
)

// MaxImageSize максимальный размер загружаемого изображения (16 MB)
const MaxImageSize int64 = 16 * 1024 * 1024

// MaxImageSizeLabel человекочитаемая запись лимита
const MaxImageSizeLabel = "16MB"

var (
	ErrOversizedFile   = errors.New("file size exceeds 16MB limit")
	ErrUnsupportedType = errors.New("invalid file format. allowed: JPG, PNG, GIF, BMP")
)

// Поддерживаемые MIME типы изображений. Сравнение точное, с учётом регистра.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/bmp":  true,
}

// Расширения, которые принимал сервер. В ValidateImage не участвуют.
var allowedImageExtensions = []string{"png", "jpg", "jpeg", "gif", "bmp"}

// RejectReason причина отклонения файла
type RejectReason string

const (
	ReasonOversizedFile   RejectReason = "oversized_file"
	ReasonUnsupportedType RejectReason = "unsupported_type"
)

func (r RejectReason) String() string {
	return string(r)
}

// CandidateFile описание файла, который пользователь пытается загрузить
type CandidateFile struct {
	Size      int64  // Размер в байтах
	MediaType string // Заявленный MIME тип, содержимое не проверяется
}

// ValidationError ошибка валидации с единственной причиной
type ValidationError struct {
	Reason RejectReason
}

func (e *ValidationError) Error() string {
	return e.sentinel().Error()
}

// Is позволяет сравнивать через errors.Is с ErrOversizedFile/ErrUnsupportedType
func (e *ValidationError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *ValidationError) sentinel() error {
	if e.Reason == ReasonOversizedFile {
		return ErrOversizedFile
	}
	return ErrUnsupportedType
}

// Outcome результат валидации: принят либо отклонён с причиной
type Outcome struct {
	Accepted bool
	Reason   RejectReason // Пусто, если Accepted
}

// Accepted возвращает положительный результат
func Accepted() Outcome {
	return Outcome{Accepted: true}
}

// Rejected возвращает отрицательный результат с причиной
func Rejected(reason RejectReason) Outcome {
	return Outcome{Reason: reason}
}

// Err возвращает nil для принятого файла или *ValidationError
func (o Outcome) Err() error {
	if o.Accepted {
		return nil
	}
	return &ValidationError{Reason: o.Reason}
}

// ValidateImage проверяет файл: сначала размер, затем тип.
// Первая же неудачная проверка определяет результат.
func ValidateImage(file CandidateFile) Outcome {
	if file.Size > MaxImageSize {
		return Rejected(ReasonOversizedFile)
	}

	if !allowedImageTypes[file.MediaType] {
		return Rejected(ReasonUnsupportedType)
	}

	return Accepted()
}

// CheckImage то же, что ValidateImage, но в виде ошибки
func CheckImage(file CandidateFile) error {
	return ValidateImage(file).Err()
}

// IsAllowedImageType проверяет, входит ли тип в список разрешённых
func IsAllowedImageType(mediaType string) bool {
	return allowedImageTypes[mediaType]
}

// AllowedImageTypes возвращает отсортированный список разрешённых типов
func AllowedImageTypes() []string {
	types := make([]string, 0, len(allowedImageTypes))
	for t := range allowedImageTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// AllowedImageExtensions возвращает копию списка расширений
func AllowedImageExtensions() []string {
	exts := make([]string, len(allowedImageExtensions))
	copy(exts, allowedImageExtensions)
	return exts
}
