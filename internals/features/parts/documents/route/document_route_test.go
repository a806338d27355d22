package route_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
)

func upload(t *testing.T, part, docType, name, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("partNumber", part)
	_ = w.WriteField("documentType", docType)
	fw, err := w.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	_, _ = io.WriteString(fw, content)
	_ = w.Close()

	req := httptest.NewRequest(fiber.MethodPost, "/guardar_archivo", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func TestUploadListServeDelete(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	employee := testutil.Login(t, app, db, "ana", constants.RoleEmployee)
	admin := testutil.Login(t, app, db, "jefe", constants.RoleAdmin)

	resp := testutil.Do(t, app, upload(t, "P-100", "planos", "plano.pdf", "%PDF-1.4 test"), employee)
	if resp.StatusCode != fiber.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("upload = %d: %s", resp.StatusCode, b)
	}

	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/obtener_archivos?partNumber=P-100&docType=planos", nil), nil)
	var list struct {
		Files []string `json:"files"`
		URLs  []string `json:"urls"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Files) != 1 || list.URLs[0] != "/archivos/P-100/planos/plano.pdf" {
		t.Fatalf("list = %+v", list)
	}

	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, list.URLs[0], nil), nil)
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK || string(body) != "%PDF-1.4 test" {
		t.Fatalf("serve = %d %q", resp.StatusCode, body)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}

	del := `{"partNumber":"P-100","documentType":"planos","fileName":"plano.pdf"}`
	resp = testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/borrar_archivo", del), employee)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("employee delete = %d, want 403", resp.StatusCode)
	}
	resp = testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/borrar_archivo", del), admin)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("admin delete = %d, want 200", resp.StatusCode)
	}
	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, list.URLs[0], nil), nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("serve deleted = %d, want 404", resp.StatusCode)
	}
}

func TestUploadRejectsTraversalAndBadTypes(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	cookie := testutil.Login(t, app, db, "ana", constants.RoleEmployee)

	cases := []struct {
		part, docType, name string
	}{
		{"../../etc", "planos", "plano.pdf"},
		{"P-100", "..", "plano.pdf"},
		{"P-100", "planos", "programa.exe"},
	}
	for _, tc := range cases {
		resp := testutil.Do(t, app, upload(t, tc.part, tc.docType, tc.name, "x"), cookie)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("upload %+v = %d, want 400", tc, resp.StatusCode)
		}
	}

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/borrar_archivo",
		`{"partNumber":"..","documentType":"planos","fileName":"x.pdf"}`), testutil.Login(t, app, db, "jefe", constants.RoleAdmin))
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("delete traversal = %d, want 400", resp.StatusCode)
	}
}
