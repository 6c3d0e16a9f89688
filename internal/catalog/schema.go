// internal/catalog/schema.go
package catalog

// catalogSchema validates catalog JSON files before they are parsed. Seat
// codes are one uppercase letter plus one digit; start times use the 24-hour
// clock so the file stays unambiguous.
const catalogSchema = `{
  "type": "object",
  "required": ["movies", "showtimes"],
  "properties": {
    "movies": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "title", "durationMinutes", "language", "genre"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string", "minLength": 1},
          "durationMinutes": {"type": "integer", "minimum": 1},
          "language": {"type": "string"},
          "genre": {"type": "string"}
        }
      }
    },
    "showtimes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "movieId", "startTime", "seats", "price"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "movieId": {"type": "string", "minLength": 1},
          "startTime": {"type": "string", "pattern": "^([01][0-9]|2[0-3]):[0-5][0-9]$"},
          "seats": {
            "type": "array",
            "items": {"type": "string", "pattern": "^[A-Z][0-9]$"}
          },
          "price": {"type": "number", "minimum": 0}
        }
      }
    }
  }
}`
