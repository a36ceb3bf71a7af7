// Package offline provides a network-free ai.WebSearcher backed by a
// fixed table of official civic portals. It keeps the document
// strategy's external-source sub-list populated in deployments without
// network access.
package offline
