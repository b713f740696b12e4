package inspect

import (
	"net/http"
	"time"

	"github.com/danmuck/wiregen/internal/schema"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"uptime":    time.Since(s.appeared).String(),
			"component": s.cfg.Name,
			"version":   "0.0.1",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":     true,
			"uptime":    time.Since(s.appeared).String(),
			"component": s.cfg.Name,
			"version":   "0.0.1",
		})
	})

	s.router.GET("/protocols", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"protocols": s.listProtocols(),
		})
	})

	s.router.GET("/protocols/:name", func(c *gin.Context) {
		p, ok := s.index[c.Param("name")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "protocol not found"})
			return
		}
		c.JSON(http.StatusOK, protocolDetail(p))
	})

	s.router.GET("/protocols/:name/interfaces/:iface", func(c *gin.Context) {
		p, ok := s.index[c.Param("name")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "protocol not found"})
			return
		}
		iface, ok := findInterface(p, c.Param("iface"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "interface not found"})
			return
		}
		c.JSON(http.StatusOK, interfaceDetail(iface))
	})
}

// View structs mirror the schema model with JSON tags and computed opcodes.
// Opcodes are declaration indices per message kind, so the inspector derives
// them the same way generated dispatchers do.

type ProtocolSummary struct {
	Name       string   `json:"name"`
	Summary    string   `json:"summary"`
	Interfaces []string `json:"interfaces"`
}

type ProtocolView struct {
	Name        string             `json:"name"`
	Summary     string             `json:"summary"`
	Description string             `json:"description,omitempty"`
	Copyright   string             `json:"copyright,omitempty"`
	Interfaces  []InterfaceSummary `json:"interfaces"`
}

type InterfaceSummary struct {
	Name     string `json:"name"`
	Summary  string `json:"summary"`
	Version  uint32 `json:"version"`
	Requests int    `json:"requests"`
	Events   int    `json:"events"`
	Enums    int    `json:"enums"`
}

type InterfaceView struct {
	Name        string        `json:"name"`
	Summary     string        `json:"summary"`
	Description string        `json:"description,omitempty"`
	Version     uint32        `json:"version"`
	Requests    []MessageView `json:"requests"`
	Events      []MessageView `json:"events"`
	Enums       []EnumView    `json:"enums"`
}

type MessageView struct {
	Opcode     uint16    `json:"opcode"`
	Name       string    `json:"name"`
	Summary    string    `json:"summary"`
	Since      uint32    `json:"since,omitempty"`
	Destructor bool      `json:"destructor,omitempty"`
	Args       []ArgView `json:"args"`
}

type ArgView struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Interface string `json:"interface,omitempty"`
	Enum      string `json:"enum,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

type EnumView struct {
	Name     string      `json:"name"`
	Summary  string      `json:"summary"`
	Bitfield bool        `json:"bitfield,omitempty"`
	Entries  []EntryView `json:"entries"`
}

type EntryView struct {
	Name    string `json:"name"`
	Value   uint32 `json:"value"`
	Summary string `json:"summary,omitempty"`
}

func (s *Server) listProtocols() []ProtocolSummary {
	list := make([]ProtocolSummary, 0, len(s.protocols))
	for _, p := range s.protocols {
		names := make([]string, 0, len(p.Interfaces))
		for i := range p.Interfaces {
			names = append(names, p.Interfaces[i].Name)
		}
		list = append(list, ProtocolSummary{
			Name:       p.Name,
			Summary:    p.Summary,
			Interfaces: names,
		})
	}
	return list
}

func protocolDetail(p *schema.Protocol) ProtocolView {
	ifaces := make([]InterfaceSummary, 0, len(p.Interfaces))
	for i := range p.Interfaces {
		iface := &p.Interfaces[i]
		ifaces = append(ifaces, InterfaceSummary{
			Name:     iface.Name,
			Summary:  iface.Summary,
			Version:  iface.Version,
			Requests: len(iface.Requests),
			Events:   len(iface.Events),
			Enums:    len(iface.Enums),
		})
	}
	return ProtocolView{
		Name:        p.Name,
		Summary:     p.Summary,
		Description: p.Description,
		Copyright:   p.Copyright,
		Interfaces:  ifaces,
	}
}

func interfaceDetail(iface *schema.Interface) InterfaceView {
	requests := make([]MessageView, 0, len(iface.Requests))
	for op, r := range iface.Requests {
		requests = append(requests, MessageView{
			Opcode:     uint16(op),
			Name:       r.Name,
			Summary:    r.Summary,
			Since:      r.Since,
			Destructor: r.Destructor,
			Args:       argViews(r.Args),
		})
	}
	events := make([]MessageView, 0, len(iface.Events))
	for op, e := range iface.Events {
		events = append(events, MessageView{
			Opcode:  uint16(op),
			Name:    e.Name,
			Summary: e.Summary,
			Since:   e.Since,
			Args:    argViews(e.Args),
		})
	}
	enums := make([]EnumView, 0, len(iface.Enums))
	for _, en := range iface.Enums {
		entries := make([]EntryView, 0, len(en.Entries))
		for _, entry := range en.Entries {
			entries = append(entries, EntryView{
				Name:    entry.Name,
				Value:   entry.Value,
				Summary: entry.Summary,
			})
		}
		enums = append(enums, EnumView{
			Name:     en.Name,
			Summary:  en.Summary,
			Bitfield: en.Bitfield,
			Entries:  entries,
		})
	}
	return InterfaceView{
		Name:        iface.Name,
		Summary:     iface.Summary,
		Description: iface.Description,
		Version:     iface.Version,
		Requests:    requests,
		Events:      events,
		Enums:       enums,
	}
}

func findInterface(p *schema.Protocol, name string) (*schema.Interface, bool) {
	for i := range p.Interfaces {
		if p.Interfaces[i].Name == name {
			return &p.Interfaces[i], true
		}
	}
	return nil, false
}

func argViews(args []schema.Arg) []ArgView {
	views := make([]ArgView, 0, len(args))
	for _, a := range args {
		views = append(views, ArgView{
			Name:      a.Name,
			Type:      string(a.Type),
			Interface: a.Interface,
			Enum:      a.Enum,
			Summary:   a.Summary,
		})
	}
	return views
}
