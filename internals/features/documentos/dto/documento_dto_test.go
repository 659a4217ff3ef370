package dto

import (
	"encoding/json"
	"testing"
)

func TestRefUnmarshalJSON(t *testing.T) {
	var payload struct {
		Tipo Ref `json:"tipos_documentos_id"`
	}

	casos := []struct {
		nombre string
		raw    string
		want   string
	}{
		{"número", `{"tipos_documentos_id": 7}`, "7"},
		{"string numérico", `{"tipos_documentos_id": "7"}`, "7"},
		{"clave natural", `{"tipos_documentos_id": "Acta"}`, "Acta"},
		{"con espacios", `{"tipos_documentos_id": "  Acta  "}`, "Acta"},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			payload.Tipo = ""
			if err := json.Unmarshal([]byte(tc.raw), &payload); err != nil {
				t.Fatal(err)
			}
			if payload.Tipo.String() != tc.want {
				t.Errorf("ref = %q, esperado %q", payload.Tipo, tc.want)
			}
		})
	}

	if err := json.Unmarshal([]byte(`{"tipos_documentos_id": true}`), &payload); err == nil {
		t.Error("esperaba error con un booleano")
	}
}

func TestRefVacia(t *testing.T) {
	if !Ref("").Vacia() || !Ref("   ").Vacia() {
		t.Error("Ref vacía no detectada")
	}
	if Ref("7").Vacia() {
		t.Error("Ref con valor reportada como vacía")
	}
}
