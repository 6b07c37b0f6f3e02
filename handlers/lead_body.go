package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxLeadBodyBytes = 1 << 20

type bodyKind int

const (
	bodyStructured bodyKind = iota
	bodyParseFailed
	bodyEmpty
)

func (k bodyKind) String() string {
	switch k {
	case bodyStructured:
		return "structured"
	case bodyParseFailed:
		return "parse_failed"
	default:
		return "empty"
	}
}

// leadBody is the normalised request body. Only a structured body carries
// fields; the other kinds read as an empty object.
type leadBody struct {
	kind   bodyKind
	fields map[string]any
	err    error
}

// Fields never returns nil.
func (b leadBody) Fields() map[string]any {
	if b.kind != bodyStructured || b.fields == nil {
		return map[string]any{}
	}
	return b.fields
}

// readLeadBody accepts form-encoded bodies as already structured and
// otherwise treats the body as JSON text that must decode to an object.
func readLeadBody(c *gin.Context) leadBody {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxLeadBodyBytes)

	switch c.ContentType() {
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		return readFormBody(c)
	default:
		raw, err := c.GetRawData()
		if err != nil {
			return leadBody{kind: bodyParseFailed, err: err}
		}
		return decodeJSONBody(raw)
	}
}

func readFormBody(c *gin.Context) leadBody {
	var err error
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		err = c.Request.ParseMultipartForm(maxLeadBodyBytes)
	} else {
		err = c.Request.ParseForm()
	}
	if err != nil {
		return leadBody{kind: bodyParseFailed, err: err}
	}

	if len(c.Request.PostForm) == 0 {
		return leadBody{kind: bodyEmpty}
	}

	fields := make(map[string]any, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	return leadBody{kind: bodyStructured, fields: fields}
}

func decodeJSONBody(raw []byte) leadBody {
	if len(bytes.TrimSpace(raw)) == 0 {
		return leadBody{kind: bodyEmpty}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return leadBody{kind: bodyParseFailed, err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return leadBody{kind: bodyParseFailed, err: errors.New("trailing data after JSON value")}
	}

	fields, ok := value.(map[string]any)
	if !ok {
		return leadBody{kind: bodyParseFailed, err: fmt.Errorf("expected a JSON object, got %T", value)}
	}
	return leadBody{kind: bodyStructured, fields: fields}
}
