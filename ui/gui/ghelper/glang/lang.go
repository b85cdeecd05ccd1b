package glang

import (
	"encoding/json"
	"errors"
	"fmt"

	"blockpuzzle/ui/gui/gbase/gassets"
)

var ErrUnsupportedLang = errors.New("unsupported lang")

type LangType int

const (
	EN LangType = iota
	RU
	ZZ
)

func LangTypeByString(lang string) LangType {
	switch lang {
	case "en":
		return EN
	case "ru":
		return RU
	default:
	}
	return ZZ
}

func (t LangType) String() string {
	switch t {
	case EN:
		return "en"
	case RU:
		return "ru"
	default:
	}
	return ""
}

type GUILangWorker struct {
	workdir string
	lang    LangType
	dict    map[string]string
}

// create object LangWorker with the configured lang
func NewGUILangWorker(workdir string, lang string) (*GUILangWorker, error) {
	lw := &GUILangWorker{
		dict:    make(map[string]string),
		workdir: workdir,
	}
	t := LangTypeByString(lang)
	if t == ZZ {
		return nil, fmt.Errorf("%s: %w", lang, ErrUnsupportedLang)
	}
	if err := lw.SetLang(t); err != nil {
		return nil, err
	}
	return lw, nil
}

func (lw *GUILangWorker) GetLang() LangType {
	return lw.lang
}

// SetLang keeps the previous dictionary when the new one cannot be read
func (lw *GUILangWorker) SetLang(l LangType) error {
	name := langTypeToJsonName(l)
	if name == "" {
		return ErrUnsupportedLang
	}
	data, err := gassets.ReadAsset(lw.workdir + "/" + name)
	if err != nil {
		return err
	}
	dict := make(map[string]string)
	if err := json.Unmarshal(data, &dict); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	lw.lang = l
	lw.dict = dict
	return nil
}

func (lw *GUILangWorker) T(key string) string {
	if v, ok := lw.dict[key]; ok {
		return v
	}
	return key // if key is not found
}

// Tf is T used as a format string
func (lw *GUILangWorker) Tf(key string, args ...any) string {
	return fmt.Sprintf(lw.T(key), args...)
}

func (lw *GUILangWorker) Keys() []string {
	keys := make([]string, 0, len(lw.dict))
	for k := range lw.dict {
		keys = append(keys, k)
	}
	return keys
}

func langTypeToJsonName(l LangType) string {
	switch l {
	case EN:
		return "en.json"
	case RU:
		return "ru.json"
	default:
		return ""
	}
}
