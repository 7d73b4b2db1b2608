package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/Sunilkumar09281/mutual-learn-space/database"
	"github.com/Sunilkumar09281/mutual-learn-space/models"
	ws "github.com/Sunilkumar09281/mutual-learn-space/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func isParticipant(room *models.ChatRoom, userID uuid.UUID) bool {
	for _, id := range room.ParticipantIDs {
		if id == userID.String() {
			return true
		}
	}
	return false
}

func loadRoomFor(roomID string, userID uuid.UUID) (*models.ChatRoom, error) {
	var room models.ChatRoom
	if err := database.DB.First(&room, "id = ?", roomID).Error; err != nil {
		return nil, errors.New("chat room not found")
	}
	if !isParticipant(&room, userID) {
		return nil, errors.New("you are not a participant of this chat room")
	}
	return &room, nil
}

func GetChatRoom(c *fiber.Ctx) error {
	room, err := loadRoomFor(c.Params("roomId"), currentUserID(c))
	if err != nil {
		if err.Error() == "chat room not found" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(room)
}

// GetRoomMessages returns the full transcript, oldest first. The same ordered
// stream backs both the REST read and the live subscription, so a sender's
// own message shows up exactly once.
func GetRoomMessages(c *fiber.Ctx) error {
	if _, err := loadRoomFor(c.Params("roomId"), currentUserID(c)); err != nil {
		if err.Error() == "chat room not found" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}
	messages, err := chatSnapshot(c.Params("roomId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load messages"})
	}
	return c.JSON(messages)
}

func appendMessage(roomID string, senderID uuid.UUID, senderName, content string) (*models.Message, error) {
	msg := models.Message{
		ChatRoomID: roomID,
		SenderID:   senderID,
		SenderName: senderName,
		Content:    content,
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&msg).Error; err != nil {
			return err
		}
		return tx.Model(&models.ChatRoom{}).
			Where("id = ?", roomID).
			Update("last_message", content).Error
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

func SendMessage(c *fiber.Ctx) error {
	userID := currentUserID(c)
	roomID := c.Params("roomId")

	room, err := loadRoomFor(roomID, userID)
	if err != nil {
		if err.Error() == "chat room not found" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	msg, err := appendMessage(roomID, userID, room.ParticipantNames[userID.String()], req.Content)
	if err != nil {
		log.Printf("Failed to save message in room %s: %v", roomID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send message"})
	}

	publishChat(roomID)

	return c.Status(fiber.StatusCreated).JSON(msg)
}

// wsFrame is what clients send after authenticating: subscribe/unsubscribe
// to a topic, or a chat message for a room.
type wsFrame struct {
	Type    string `json:"type"`
	Topic   string `json:"topic,omitempty"`
	RoomID  string `json:"room_id,omitempty"`
	Content string `json:"content,omitempty"`
}

// resolveTopic maps a client-requested topic name onto the hub topic,
// pinning per-user streams to the authenticated identity and checking room
// membership for chat topics.
func resolveTopic(userID uuid.UUID, raw string) (string, error) {
	switch {
	case raw == ws.TopicCourses:
		return ws.TopicCourses, nil
	case raw == "requests:received":
		return ws.TopicRequestsReceived(userID), nil
	case raw == "requests:sent":
		return ws.TopicRequestsSent(userID), nil
	case raw == "learning":
		return ws.TopicLearning(userID), nil
	case strings.HasPrefix(raw, "chat:"):
		roomID := strings.TrimPrefix(raw, "chat:")
		if _, err := loadRoomFor(roomID, userID); err != nil {
			return "", err
		}
		return ws.TopicChat(roomID), nil
	default:
		return "", errors.New("unknown topic")
	}
}

func topicSnapshot(userID uuid.UUID, topic string) (interface{}, error) {
	switch {
	case topic == ws.TopicCourses:
		return courseSnapshot()
	case topic == ws.TopicRequestsReceived(userID):
		return receivedRequestSnapshot(userID)
	case topic == ws.TopicRequestsSent(userID):
		return sentRequestSnapshot(userID)
	case topic == ws.TopicLearning(userID):
		return learningSnapshot(userID)
	case strings.HasPrefix(topic, "chat:"):
		return chatSnapshot(strings.TrimPrefix(topic, "chat:"))
	default:
		return nil, errors.New("unknown topic")
	}
}

// ServeWs is the live-subscription endpoint. The first frame must carry a
// valid JWT; after that the client subscribes to topics and receives a full
// snapshot immediately and on every subsequent change, until it unsubscribes
// or the connection closes.
func ServeWs(c *websocketcontrib.Conn) {
	type authFrame struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var auth authFrame
	if err := c.ReadJSON(&auth); err != nil || auth.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(auth.Token)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}
	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid user ID"})
		c.Close()
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "User not found"})
		c.Close()
		return
	}

	client := &ws.Client{UserID: userID, Conn: c}
	ws.Live.Register(client)
	defer func() {
		ws.Live.Unregister(client)
		c.Close()
	}()

	for {
		var frame wsFrame
		if err := c.ReadJSON(&frame); err != nil {
			if websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseAbnormalClosure) {
				log.Printf("WebSocket closed for client %s: %v", userID, err)
			} else {
				log.Printf("WebSocket read error for client %s: %v", userID, err)
			}
			break
		}

		// Once the client is registered the hub may write to the connection
		// at any moment, so everything below goes through client.Send.
		switch frame.Type {
		case "subscribe":
			topic, err := resolveTopic(userID, frame.Topic)
			if err != nil {
				_ = client.Send(fiber.Map{"error": err.Error()})
				continue
			}
			snapshot, err := topicSnapshot(userID, topic)
			if err != nil {
				log.Printf("Failed to build snapshot on %s for client %s: %v", topic, userID, err)
				_ = client.Send(fiber.Map{"error": "Failed to load snapshot"})
				continue
			}
			ws.Live.Subscribe(client, topic)
			_ = client.Send(ws.Event{Topic: topic, Data: snapshot})

		case "unsubscribe":
			topic, err := resolveTopic(userID, frame.Topic)
			if err != nil {
				_ = client.Send(fiber.Map{"error": err.Error()})
				continue
			}
			ws.Live.Unsubscribe(client, topic)

		case "message":
			room, err := loadRoomFor(frame.RoomID, userID)
			if err != nil {
				_ = client.Send(fiber.Map{"error": err.Error()})
				continue
			}
			if frame.Content == "" {
				_ = client.Send(fiber.Map{"error": "Message content is required"})
				continue
			}
			if _, err := appendMessage(frame.RoomID, userID, room.ParticipantNames[userID.String()], frame.Content); err != nil {
				log.Printf("Failed to save message for client %s: %v", userID, err)
				_ = client.Send(fiber.Map{"error": "Failed to save message"})
				continue
			}
			publishChat(frame.RoomID)

		default:
			_ = client.Send(fiber.Map{"error": "Unknown frame type"})
		}
	}
}
