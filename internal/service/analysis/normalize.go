package analysis

import (
	"SkinToneAdvisor/internal/apperr"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// RecommendedColorsCount — ровно столько цветов должна вернуть модель.
const RecommendedColorsCount = 5

// fencePattern снимает обёртку ```json\n ... \n``` ровно в этой форме.
// Другие формы (без перевода строки, без тега json) не снимаются и дальше не разбираются.
var fencePattern = regexp.MustCompile("```json\n|\n```\n?")

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type SkinTone struct {
	Type    string `json:"type"`
	HexCode string `json:"hexCode"`
}

type Color struct {
	Name    string `json:"name"`
	HexCode string `json:"hexCode"`
}

// Recommendation — нормализованный ответ модели: тон кожи и ровно пять подходящих цветов.
type Recommendation struct {
	SkinTone          SkinTone `json:"skinTone"`
	RecommendedColors []Color  `json:"recommendedColors"`
}

// StripFences убирает markdown-обёртку ответа модели.
func StripFences(raw string) string {
	return fencePattern.ReplaceAllString(raw, "")
}

// Normalize превращает текст ответа модели в Recommendation.
// Частичного результата не бывает: любая ошибка возвращается как *apperr.NormalizationError.
func Normalize(raw string) (Recommendation, error) {
	clean := StripFences(raw)

	rec, err := decodeRecommendation([]byte(clean))
	if err != nil {
		return Recommendation{}, apperr.Normalization(err)
	}
	if err := rec.Validate(); err != nil {
		return Recommendation{}, apperr.Normalization(err)
	}
	return rec, nil
}

// object — JSON-объект с сырыми значениями по точному имени ключа.
type object map[string]json.RawMessage

// field разбирает значение ключа key в dst. Ключ сравнивается с учётом регистра.
func (o object) field(key string, dst any) error {
	raw, ok := o[key]
	if !ok {
		return fmt.Errorf("missing field %q", key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}

// decodeRecommendation разбирает весь текст целиком: данные после объекта и ключи
// в другом регистре считаются ошибкой. Лишние ключи отбрасываются.
func decodeRecommendation(data []byte) (Recommendation, error) {
	var top object
	if err := json.Unmarshal(data, &top); err != nil {
		return Recommendation{}, fmt.Errorf("decode json: %w", err)
	}
	if top == nil {
		return Recommendation{}, errors.New("decode json: not an object")
	}

	var rec Recommendation
	var tone object
	if err := top.field("skinTone", &tone); err != nil {
		return Recommendation{}, err
	}
	if err := tone.field("type", &rec.SkinTone.Type); err != nil {
		return Recommendation{}, fmt.Errorf("skinTone: %w", err)
	}
	if err := tone.field("hexCode", &rec.SkinTone.HexCode); err != nil {
		return Recommendation{}, fmt.Errorf("skinTone: %w", err)
	}

	var colors []object
	if err := top.field("recommendedColors", &colors); err != nil {
		return Recommendation{}, err
	}
	rec.RecommendedColors = make([]Color, len(colors))
	for i, c := range colors {
		if err := c.field("name", &rec.RecommendedColors[i].Name); err != nil {
			return Recommendation{}, fmt.Errorf("recommendedColors[%d]: %w", i, err)
		}
		if err := c.field("hexCode", &rec.RecommendedColors[i].HexCode); err != nil {
			return Recommendation{}, fmt.Errorf("recommendedColors[%d]: %w", i, err)
		}
	}
	return rec, nil
}

// Validate проверяет количество цветов и формат hex-кодов.
func (r Recommendation) Validate() error {
	if !hexColorPattern.MatchString(r.SkinTone.HexCode) {
		return fmt.Errorf("skinTone.hexCode %q is not a #RRGGBB color", r.SkinTone.HexCode)
	}
	if n := len(r.RecommendedColors); n != RecommendedColorsCount {
		return fmt.Errorf("recommendedColors has %d items, want %d", n, RecommendedColorsCount)
	}
	for i, c := range r.RecommendedColors {
		if !hexColorPattern.MatchString(c.HexCode) {
			return fmt.Errorf("recommendedColors[%d].hexCode %q is not a #RRGGBB color", i, c.HexCode)
		}
	}
	return nil
}
