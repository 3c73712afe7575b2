package vcard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "Jane_Doe.vcf", Filename("Jane Doe"))
	assert.Equal(t, "kartvizit.vcf", Filename("  "))
}

func TestBuildBasicFields(t *testing.T) {
	out := string(Build(Card{
		FullName: "Jane Doe",
		Title:    "CTO",
		Company:  "Acme",
		Phone:    "+905551112233",
		Email:    "jane@acme.dev",
		Website:  "https://acme.dev",
		Address:  "İstanbul",
		Note:     "Merhaba",
	}))

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCARD\r\nVERSION:3.0\r\n"))
	assert.Contains(t, out, "FN:Jane Doe\r\n")
	assert.Contains(t, out, "N:Doe;Jane;;;\r\n")
	assert.Contains(t, out, "TITLE:CTO\r\n")
	assert.Contains(t, out, "ORG:Acme\r\n")
	assert.Contains(t, out, "TEL;TYPE=CELL:+905551112233\r\n")
	assert.Contains(t, out, "EMAIL;TYPE=INTERNET:jane@acme.dev\r\n")
	assert.Contains(t, out, "URL:https://acme.dev\r\n")
	assert.Contains(t, out, "ADR;TYPE=WORK:;;İstanbul;;;;\r\n")
	assert.True(t, strings.HasSuffix(out, "END:VCARD\r\n"))
}

func TestBuildOmitsEmptyFields(t *testing.T) {
	out := string(Build(Card{FullName: "Jane"}))
	assert.NotContains(t, out, "TITLE")
	assert.NotContains(t, out, "ORG")
	assert.NotContains(t, out, "PHOTO")
}

func TestBuildPhotoFromDataURI(t *testing.T) {
	out := string(Build(Card{
		FullName: "Jane",
		Photo:    "data:image/jpeg;base64,dGVzdA==",
	}))
	// MIME alt tipi büyük harfle TYPE parametresi olur.
	assert.Contains(t, out, "PHOTO;ENCODING=b;TYPE=JPEG:dGVzdA==\r\n")

	// data-URI olmayan referans (düz URL) gömülmez.
	out = string(Build(Card{FullName: "Jane", Photo: "https://cdn/x.jpg"}))
	assert.NotContains(t, out, "PHOTO")
}

func TestBuildEscaping(t *testing.T) {
	out := string(Build(Card{FullName: "A; B, C"}))
	assert.Contains(t, out, "FN:A\\; B\\, C\r\n")
}
