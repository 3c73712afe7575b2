package vcard

import (
	"strings"
)

// ContentType vCard indirme yanıtının içerik tipi.
const ContentType = "text/vcard;charset=utf-8"

// Card vCard 3.0 çıktısına girecek alanlar. Boş alanlar çıktıya yazılmaz.
type Card struct {
	FullName string
	Title    string
	Company  string
	Phone    string
	Email    string
	Website  string
	Address  string
	Note     string
	// Photo base64 data-URI ise PHOTO alanı olarak gömülür; başka biçimler atlanır.
	Photo string
}

// Filename indirilecek dosyanın adı: boşluklar alt çizgi, uzantı .vcf.
func Filename(name string) string {
	n := strings.TrimSpace(name)
	if n == "" {
		n = "kartvizit"
	}
	return strings.ReplaceAll(n, " ", "_") + ".vcf"
}

// Build vCard 3.0 içeriği üretir.
func Build(c Card) []byte {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\r\n")
	b.WriteString("VERSION:3.0\r\n")

	writeField(&b, "FN", c.FullName)
	if c.FullName != "" {
		// N: soyad;ad;;; — son kelime soyad kabul edilir.
		last, first := splitName(c.FullName)
		b.WriteString("N:" + escape(last) + ";" + escape(first) + ";;;\r\n")
	}
	writeField(&b, "TITLE", c.Title)
	writeField(&b, "ORG", c.Company)
	writeField(&b, "TEL;TYPE=CELL", c.Phone)
	writeField(&b, "EMAIL;TYPE=INTERNET", c.Email)
	writeField(&b, "URL", c.Website)
	if c.Address != "" {
		b.WriteString("ADR;TYPE=WORK:;;" + escape(c.Address) + ";;;;\r\n")
	}
	writeField(&b, "NOTE", c.Note)

	if mime, data, ok := parseDataURI(c.Photo); ok {
		// MIME alt tipi büyük harfle TYPE parametresi olur (jpeg -> JPEG).
		b.WriteString("PHOTO;ENCODING=b;TYPE=" + strings.ToUpper(mime) + ":" + data + "\r\n")
	}

	b.WriteString("END:VCARD\r\n")
	return []byte(b.String())
}

func writeField(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(key + ":" + escape(value) + "\r\n")
}

// escape vCard 3.0 metin kaçışları.
func escape(s string) string {
	r := strings.NewReplacer("\\", "\\\\", ";", "\\;", ",", "\\,", "\n", "\\n", "\r", "")
	return r.Replace(s)
}

func splitName(full string) (last, first string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return "", parts[0]
	}
	return parts[len(parts)-1], strings.Join(parts[:len(parts)-1], " ")
}

// parseDataURI "data:image/<alt-tip>;base64,<veri>" biçimini çözer.
func parseDataURI(uri string) (mimeSubtype, data string, ok bool) {
	if !strings.HasPrefix(uri, "data:image/") {
		return "", "", false
	}
	rest := strings.TrimPrefix(uri, "data:image/")
	idx := strings.Index(rest, ";base64,")
	if idx < 0 {
		return "", "", false
	}
	mimeSubtype = rest[:idx]
	data = rest[idx+len(";base64,"):]
	if mimeSubtype == "" || data == "" {
		return "", "", false
	}
	return mimeSubtype, data, true
}
