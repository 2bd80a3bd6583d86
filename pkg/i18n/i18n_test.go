package i18n

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_AllMessagesFilled(t *testing.T) {
	for _, lang := range []string{"en", "ru"} {
		v := reflect.ValueOf(Get(lang))
		for i := 0; i < v.NumField(); i++ {
			assert.NotEmpty(t, v.Field(i).String(), "%s: %s", lang, v.Type().Field(i).Name)
		}
	}
}

func TestGet_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, Get("en"), Get("de"))
	assert.NotEqual(t, Get("en").MenuAdd, Get("ru").MenuAdd)
}
