package view

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// FlashData holds the one-shot messages shown at the top of the next page.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if sess == nil {
		c.Logger().Warn("flash session unavailable: ", err)
		return
	}
	sess.AddFlash(message, key)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warn("could not save flash session: ", err)
	}
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData
	sess, _ := session.Get(flashSessionName, c)
	if sess == nil {
		return data
	}

	success := sess.Flashes(flashKeySuccess)
	errs := sess.Flashes(flashKeyError)
	if len(success) == 0 && len(errs) == 0 {
		return data
	}

	data.Success = toStrings(success)
	data.Error = toStrings(errs)
	_ = sess.Save(c.Request(), c.Response())
	return data
}

func toStrings(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

// FlashBanner renders the flash messages as alerts. It renders nothing when
// there are none.
func FlashBanner(data FlashData) g.Node {
	if data.Empty() {
		return nil
	}
	return h.Div(
		h.ID("flash"),
		h.Class("fixed top-4 right-4 z-50 space-y-2"),
		g.Map(data.Success, func(msg string) g.Node {
			return alert("bg-green-50 border-green-200 text-green-800", msg)
		}),
		g.Map(data.Error, func(msg string) g.Node {
			return alert("bg-red-50 border-red-200 text-red-800", msg)
		}),
	)
}

func alert(classes, msg string) g.Node {
	return h.Div(
		g.Attr("role", "alert"),
		h.Class("px-4 py-3 rounded-lg border shadow-sm text-sm "+classes),
		g.Text(msg),
	)
}
