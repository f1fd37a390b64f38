package handlers

import (
  "fmt"
  "strconv"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
)

func pathUUID(c *gin.Context, name string) (uuid.UUID, error) {
  raw := c.Param(name)
  id, err := uuid.Parse(raw)
  if err != nil {
    return uuid.Nil, fmt.Errorf("invalid %s %q", name, raw)
  }
  return id, nil
}

func queryLimit(c *gin.Context, defaultVal int) int {
  raw := c.Query("limit")
  if raw == "" {
    return defaultVal
  }
  limit, err := strconv.Atoi(raw)
  if err != nil {
    return defaultVal
  }
  return limit
}
