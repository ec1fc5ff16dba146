package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajumanholidays/backend/internal/store"
)

// clampSeatCapacity keeps a bus's capacity inside [1, 100]. Anything missing
// or non-numeric falls back to the previous value, then to 1.
func clampSeatCapacity(v any, previous float64) float64 {
	n, ok := asNumber(v)
	if !ok {
		n = previous
	}
	if n < 1 {
		n = 1
	}
	if n > 100 {
		n = 100
	}
	return n
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

// GET /buses
func (s *Server) handleBusList(c *gin.Context) {
	list := []store.Record{}
	s.store.View(func(doc *store.Document) {
		list = store.CloneAll(doc.Buses)
	})
	c.JSON(http.StatusOK, list)
}

// GET /buses/:id
func (s *Server) handleBusGet(c *gin.Context) {
	id := c.Param("id")

	var bus store.Record
	s.store.View(func(doc *store.Document) {
		for _, rec := range doc.Buses {
			if recordMatches(rec, "id", id) {
				bus = rec.Clone()
				return
			}
		}
	})
	if bus == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Bus not found"})
		return
	}
	c.JSON(http.StatusOK, bus)
}

// POST /buses
func (s *Server) handleBusCreate(c *gin.Context) {
	var body store.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	for _, field := range []string{"name", "serialNumber", "registrationNumber", "type", "from", "to"} {
		if body.String(field) == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Missing required fields (name, serialNumber, registrationNumber, type, from, to).",
			})
			return
		}
	}

	var bus store.Record
	err := s.store.Update(func(doc *store.Document) error {
		image := body.String("image")
		bus = store.Record{
			"id":                 doc.NextID(),
			"name":               body["name"],
			"serialNumber":       body["serialNumber"],
			"registrationNumber": body["registrationNumber"],
			"type":               body["type"],
			"seatCapacity":       clampSeatCapacity(body["seatCapacity"], 1),
			"from":               body["from"],
			"to":                 body["to"],
			"image":              image,
			"driverId":           body["driverId"],
			"supervisorId":       body["supervisorId"],
		}
		doc.Buses = append(doc.Buses, bus)
		bus = bus.Clone()
		return nil
	})
	if err != nil {
		s.serverError(c, "create bus", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "bus": bus})
}

// PUT /buses/:id
func (s *Server) handleBusUpdate(c *gin.Context) {
	var body store.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	id := c.Param("id")
	var bus store.Record
	err := s.store.Update(func(doc *store.Document) error {
		for i, rec := range doc.Buses {
			if recordMatches(rec, "id", id) {
				previous := rec.Float("seatCapacity")
				if previous == 0 {
					previous = 1
				}
				doc.Buses[i].Merge(body)
				doc.Buses[i]["seatCapacity"] = clampSeatCapacity(doc.Buses[i]["seatCapacity"], previous)
				bus = doc.Buses[i].Clone()
				return nil
			}
		}
		return errNotFound
	})
	if err == errNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Bus not found"})
		return
	}
	if err != nil {
		s.serverError(c, "update bus", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bus": bus})
}

// DELETE /buses/:id
func (s *Server) handleBusDelete(c *gin.Context) {
	id := c.Param("id")

	err := s.store.Update(func(doc *store.Document) error {
		for i, rec := range doc.Buses {
			if recordMatches(rec, "id", id) {
				doc.Buses = append(doc.Buses[:i], doc.Buses[i+1:]...)
				return nil
			}
		}
		return errNotFound
	})
	if err == errNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Bus not found"})
		return
	}
	if err != nil {
		s.serverError(c, "delete bus", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Bus deleted"})
}
