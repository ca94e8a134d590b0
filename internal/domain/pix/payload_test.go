package pix

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCRC16_CheckValue(t *testing.T) {
	if got := CRC16("123456789"); got != 0x29B1 {
		t.Fatalf("expected 0x29B1, got 0x%04X", got)
	}
	if got := CRC16(""); got != 0xFFFF {
		t.Fatalf("expected init value for empty input, got 0x%04X", got)
	}
}

func TestGenerateCode_Golden(t *testing.T) {
	g := NewGenerator("")

	cases := []struct {
		name   string
		key    string
		payee  string
		amount decimal.Decimal
		ref    string
		want   string
	}{
		{
			name:   "cpf key with accented payee",
			key:    "12345678900",
			payee:  "José da Silva Ação",
			amount: decimal.NewFromInt(100),
			ref:    "PIX123",
			want:   "00020126330014br.gov.bcb.pix0111123456789005204000053039865406100.005802BR5918JOSE DA SILVA ACAO6009SAO PAULO62100506PIX1236304CC4B",
		},
		{
			name:   "email key without reference",
			key:    "contato@loja.com.br",
			payee:  "  Padaria São João ",
			amount: decimal.RequireFromString("19.9"),
			ref:    "",
			want:   "00020126410014br.gov.bcb.pix0119contato@loja.com.br520400005303986540519.905802BR5916PADARIA SAO JOAO6009SAO PAULO62070503***6304D51C",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.GenerateCode(tc.key, tc.payee, tc.amount, tc.ref)
			if got != tc.want {
				t.Fatalf("unexpected payload\nexpected %s\ngot      %s", tc.want, got)
			}
		})
	}
}

func TestGenerateCode_DeterministicWithValidChecksum(t *testing.T) {
	var g Generator
	amounts := []string{"0.01", "1", "49.9", "1234.56", "99999.99"}
	for _, a := range amounts {
		amount := decimal.RequireFromString(a)
		first := g.GenerateCode("+5585999999999", "Loja Exemplo", amount, "PIX1700000000000ABCDEF01")
		second := g.GenerateCode("+5585999999999", "Loja Exemplo", amount, "PIX1700000000000ABCDEF01")
		if first != second {
			t.Fatalf("expected deterministic output for %s", a)
		}
		body, checksum := first[:len(first)-4], first[len(first)-4:]
		if !strings.HasSuffix(body, "6304") {
			t.Fatalf("expected crc field prefix, got %s", body)
		}
		if want := fmt.Sprintf("%04X", CRC16(body)); checksum != want {
			t.Fatalf("expected checksum %s, got %s", want, checksum)
		}
	}
}

func TestGenerateCode_UsesConfiguredCity(t *testing.T) {
	code := NewGenerator("Fortaleza").GenerateCode("key", "Loja", decimal.NewFromInt(1), "REF")
	if !strings.Contains(code, "6009FORTALEZA") {
		t.Fatalf("expected configured city, got %s", code)
	}
}

func TestGenerateCode_LongestKeyFitsMerchantAccount(t *testing.T) {
	if MaxKeyLength != 77 {
		t.Fatalf("expected max key length 77, got %d", MaxKeyLength)
	}
	key := strings.Repeat("a", MaxKeyLength)
	code := NewGenerator("").GenerateCode(key, "Loja", decimal.NewFromInt(1), "REF")
	want := "2699" + "0014br.gov.bcb.pix" + "0177" + key + "5204"
	if !strings.Contains(code, want) {
		t.Fatalf("expected merchant account field %q in %s", want, code)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"100":     "100.00",
		"19.995":  "20.00",
		"19.994":  "19.99",
		"0.005":   "0.01",
		"10.1":    "10.10",
		"2.675":   "2.68",
		"1234.5":  "1234.50",
		"0.00499": "0.00",
	}
	for in, want := range cases {
		if got := FormatAmount(decimal.RequireFromString(in)); got != want {
			t.Fatalf("amount %s: expected %s, got %s", in, want, got)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"Conceição", 25, "CONCEICAO"},
		{"Ñandú Açaí Ltda", 25, "NANDU ACAI LTDA"},
		{"Comércio de Produtos Alimentícios", 25, "COMERCIO DE PRODUTOS ALIM"},
		{"Loja 😀 Feliz", 25, "LOJA  FELIZ"},
		{"São Paulo", 15, "SAO PAULO"},
	}
	for _, tc := range cases {
		if got := NormalizeName(tc.in, tc.max); got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestNormalizeReference(t *testing.T) {
	if got := NormalizeReference("pix-123_abc"); got != "pix123abc" {
		t.Fatalf("expected non-alphanumerics stripped, got %q", got)
	}
	if got := NormalizeReference("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123"); got != "ABCDEFGHIJKLMNOPQRSTUVWXY" {
		t.Fatalf("expected 25 chars, got %q", got)
	}
	if got := NormalizeReference("---"); got != emptyReference {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestGenerateReferenceID(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := GenerateReferenceID()
		if len(id) == 0 || len(id) > 25 {
			t.Fatalf("unexpected length %d for %q", len(id), id)
		}
		if NormalizeReference(id) != id {
			t.Fatalf("reference id must be alphanumeric, got %q", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate reference id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestGenerateReferenceID_Format(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	id := generateReferenceID(now)
	if !strings.HasPrefix(id, "PIX1700000000123") {
		t.Fatalf("expected time-based prefix, got %q", id)
	}
	if len(id) != 24 {
		t.Fatalf("expected 24 chars, got %d (%q)", len(id), id)
	}
	if strings.ToUpper(id) != id {
		t.Fatalf("expected upper-case id, got %q", id)
	}
}
