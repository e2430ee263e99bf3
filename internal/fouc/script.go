package fouc

import (
	"fmt"
	"strings"
)

// Generate composes the pre-paint script body for cfg. The output is a
// self-contained, synchronously-executing IIFE meant for a <script>
// tag in <head>, before any stylesheet paints.
//
// Section order is a correctness requirement: storage read, blob
// fallback, defaults, auto resolution, DOM apply, CSS var replay,
// cookie write-back, body reveal. The whole body sits in one try/catch
// because a failed theme restore must never block rendering.
func Generate(cfg Config) string {
	var b strings.Builder

	b.WriteString("(function() {\n")
	b.WriteString("  try {\n")
	b.WriteString("    var root = document.documentElement;\n")
	b.WriteString("    var theme = null;\n")
	b.WriteString("    var mode = null;\n")

	writeStorageRead(&b, cfg)
	writeBlobFallback(&b)
	writeDefaults(&b, cfg)
	writeModeResolution(&b)
	writeApply(&b)
	writeVarReplay(&b)
	if cfg.StorageType == StorageCookie {
		writeCookieWriteback(&b)
	}
	if cfg.BodyReveal {
		writeBodyReveal(&b, cfg.RevealTimeout)
	}
	if cfg.Debug {
		b.WriteString("    console.debug('[themekit]', { theme: theme, mode: mode, resolved: resolved });\n")
	}

	b.WriteString("  } catch (e) {\n")
	b.WriteString("    console.warn('[themekit] pre-paint script failed:', e);\n")
	b.WriteString("  }\n")
	b.WriteString("})();\n")

	return b.String()
}

func writeStorageRead(b *strings.Builder, cfg Config) {
	if cfg.StorageType == StorageCookie {
		// Cookies first so SSR-set values win, then localStorage as the
		// fallback for clients that persisted before cookies existed.
		b.WriteString("    var readCookie = function(name) {\n")
		b.WriteString("      var m = document.cookie.match(new RegExp('(?:^|; )' + name + '=([^;]*)'));\n")
		b.WriteString("      return m ? decodeURIComponent(m[1]) : null;\n")
		b.WriteString("    };\n")
		fmt.Fprintf(b, "    theme = readCookie('%s');\n", KeyTheme)
		fmt.Fprintf(b, "    mode = readCookie('%s');\n", KeyMode)
		fmt.Fprintf(b, "    if (!theme) theme = localStorage.getItem('%s');\n", KeyTheme)
		fmt.Fprintf(b, "    if (!mode) mode = localStorage.getItem('%s');\n", KeyMode)
		return
	}
	fmt.Fprintf(b, "    theme = localStorage.getItem('%s');\n", KeyTheme)
	fmt.Fprintf(b, "    mode = localStorage.getItem('%s');\n", KeyMode)
}

func writeBlobFallback(b *strings.Builder) {
	b.WriteString("    if (!theme || !mode) {\n")
	fmt.Fprintf(b, "      var blob = localStorage.getItem('%s');\n", KeyModeConfig)
	b.WriteString("      if (blob) {\n")
	b.WriteString("        var parsed = JSON.parse(blob);\n")
	b.WriteString("        if (!theme && parsed.theme) theme = parsed.theme;\n")
	b.WriteString("        if (!mode && parsed.mode) mode = parsed.mode;\n")
	b.WriteString("      }\n")
	b.WriteString("    }\n")
}

func writeDefaults(b *strings.Builder, cfg Config) {
	fmt.Fprintf(b, "    if (!theme) theme = %s;\n", jsString(cfg.DefaultTheme))
	fmt.Fprintf(b, "    if (!mode) mode = %s;\n", jsString(string(cfg.DefaultMode)))
}

func writeModeResolution(b *strings.Builder) {
	b.WriteString("    var resolved = mode;\n")
	b.WriteString("    if (resolved === 'auto') {\n")
	b.WriteString("      var mq = window.matchMedia && window.matchMedia('(prefers-color-scheme: dark)');\n")
	b.WriteString("      resolved = mq && mq.matches ? 'dark' : 'light';\n")
	b.WriteString("    }\n")
}

func writeApply(b *strings.Builder) {
	b.WriteString("    root.setAttribute('data-theme', theme);\n")
	b.WriteString("    root.setAttribute('data-mode', resolved);\n")
	b.WriteString("    root.style.colorScheme = resolved;\n")
	b.WriteString("    if (resolved === 'dark') root.classList.add('dark');\n")
	b.WriteString("    else root.classList.remove('dark');\n")
}

func writeVarReplay(b *strings.Builder) {
	// Replaying the cached custom properties bridges the gap until the
	// real theme stylesheet loads, avoiding a second flash.
	fmt.Fprintf(b, "    var cached = localStorage.getItem('%s');\n", KeyCSSVars)
	b.WriteString("    if (cached) {\n")
	b.WriteString("      var vars = JSON.parse(cached);\n")
	b.WriteString("      for (var k in vars) {\n")
	b.WriteString("        if (k.indexOf('--') === 0) root.style.setProperty(k, vars[k]);\n")
	b.WriteString("      }\n")
	b.WriteString("    }\n")
}

func writeCookieWriteback(b *strings.Builder) {
	// The resolved mode goes back, never the raw 'auto' preference, so
	// server-side rendering can emit the right markup without a media
	// query of its own.
	fmt.Fprintf(b, "    document.cookie = '%s=' + encodeURIComponent(theme) + ';path=/;max-age=%d';\n", KeyTheme, cookieMaxAge)
	fmt.Fprintf(b, "    document.cookie = '%s=' + encodeURIComponent(resolved) + ';path=/;max-age=%d';\n", KeyMode, cookieMaxAge)
}

func writeBodyReveal(b *strings.Builder, timeoutMs int) {
	// The script runs before <body> exists, so hiding goes through an
	// injected stylesheet rather than body.style.
	b.WriteString("    var hide = document.createElement('style');\n")
	b.WriteString("    hide.id = 'themekit-reveal';\n")
	b.WriteString("    hide.textContent = 'body{visibility:hidden}';\n")
	b.WriteString("    document.head.appendChild(hide);\n")
	b.WriteString("    var reveal = function() {\n")
	b.WriteString("      var s = document.getElementById('themekit-reveal');\n")
	b.WriteString("      if (s && s.parentNode) s.parentNode.removeChild(s);\n")
	b.WriteString("      if (document.body) {\n")
	b.WriteString("        document.body.style.transition = 'opacity 0.15s ease';\n")
	b.WriteString("        document.body.style.visibility = 'visible';\n")
	b.WriteString("      }\n")
	b.WriteString("    };\n")
	b.WriteString("    if (document.readyState === 'loading') {\n")
	b.WriteString("      document.addEventListener('DOMContentLoaded', reveal);\n")
	b.WriteString("    } else {\n")
	b.WriteString("      reveal();\n")
	b.WriteString("    }\n")
	fmt.Fprintf(b, "    setTimeout(reveal, %d);\n", timeoutMs)
}

// jsString renders a Go string as a single-quoted JS literal.
func jsString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return "'" + s + "'"
}
