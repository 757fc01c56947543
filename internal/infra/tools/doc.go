// Package tools holds the built-in workspace tools and the static catalog
// that maps every slug to its factory.
//
// Tools are small, self-contained units: each one reads a domain.ToolRequest
// (positional args, string options and an optional binary/text input) and
// produces a domain.ToolResult. Network-backed tools use the HTTPDoer and
// endpoints handed over in domain.ToolDeps so tests can point them at
// httptest servers.
package tools
