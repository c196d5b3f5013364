package http_test

import (
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/moogar0880/problems"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/inhouse-backend/internal/handlers/dto"
)

var _ = Describe("InHouse API", func() {
	var api *testAPI

	BeforeEach(func() {
		api = newTestAPI()
	})

	Describe("Autenticação", func() {
		signup := func(email string) *httptest.ResponseRecorder {
			return api.do(nethttp.MethodPost, "/api/auth/signup", map[string]interface{}{
				"name": "Ana", "email": email, "password": "s3nha",
			})
		}

		It("cadastra e autentica o mesmo usuário", func() {
			w := signup("ana@x.com")
			Expect(w.Code).To(Equal(nethttp.StatusCreated))

			body := decode(w)
			Expect(body["success"]).To(BeTrue())
			Expect(body["token"]).NotTo(BeEmpty())
			user := body["user"].(map[string]interface{})
			Expect(user["points"]).To(BeEquivalentTo(0))
			Expect(user["stars"]).To(BeEquivalentTo(5))
			Expect(user["user_type"]).To(Equal("tenant"))
			Expect(user).NotTo(HaveKey("password"))

			w = api.do(nethttp.MethodPost, "/api/auth/login", map[string]interface{}{
				"email": "ana@x.com", "password": "s3nha",
			})
			Expect(w.Code).To(Equal(nethttp.StatusOK))
			Expect(decode(w)["user"].(map[string]interface{})["id"]).To(Equal(user["id"]))
		})

		It("rejeita senha errada com 401", func() {
			Expect(signup("ana@x.com").Code).To(Equal(nethttp.StatusCreated))

			w := api.do(nethttp.MethodPost, "/api/auth/login", map[string]interface{}{
				"email": "ana@x.com", "password": "errada",
			})
			Expect(w.Code).To(Equal(nethttp.StatusUnauthorized))
			Expect(decode(w)["error"]).To(Equal("Invalid credentials"))
		})

		It("responde 400 para email duplicado sem criar outra conta", func() {
			Expect(signup("ana@x.com").Code).To(Equal(nethttp.StatusCreated))

			w := signup("ANA@x.com")
			Expect(w.Code).To(Equal(nethttp.StatusBadRequest))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring(problems.ProblemMediaType))

			body := decode(w)
			Expect(body["error"]).To(Equal("Email already exists"))
			Expect(body["type"]).To(Equal("http://localhost:3001/problems/conflict"))

			var count int64
			Expect(api.db.Table("users").Count(&count).Error).To(Succeed())
			Expect(count).To(BeEquivalentTo(1))
		})

		It("exige campos obrigatórios no cadastro", func() {
			w := api.do(nethttp.MethodPost, "/api/auth/signup", map[string]interface{}{"email": "ana@x.com"})
			Expect(w.Code).To(Equal(nethttp.StatusBadRequest))

			body := decode(w)
			Expect(body["error"]).NotTo(BeEmpty())
			Expect(body["errors"]).NotTo(BeEmpty())
		})

		It("atualiza o perfil somente com token válido", func() {
			w := signup("ana@x.com")
			token := decode(w)["token"].(string)

			w = api.do(nethttp.MethodPut, "/api/users/profile", map[string]interface{}{"phone": "+55 21 99999-0000"})
			Expect(w.Code).To(Equal(nethttp.StatusUnauthorized))

			w = api.do(nethttp.MethodPut, "/api/users/profile",
				map[string]interface{}{"name": "Ana Maria", "phone": "+55 21 99999-0000"},
				"Authorization", "Bearer "+token)
			Expect(w.Code).To(Equal(nethttp.StatusOK))

			body := decode(w)
			Expect(body["name"]).To(Equal("Ana Maria"))
			Expect(body["phone"]).To(Equal("+55 21 99999-0000"))
		})
	})

	Describe("Feed", func() {
		It("soma uma curtida por chamada", func() {
			w := api.do(nethttp.MethodPost, "/api/posts", map[string]interface{}{"author": "Ana", "content": "Olá"})
			Expect(w.Code).To(Equal(nethttp.StatusCreated))
			post := decode(w)
			Expect(post["time"]).To(Equal("Just now"))
			Expect(post["likes"]).To(BeEquivalentTo(0))

			path := fmt.Sprintf("/api/posts/%v/like", post["id"])
			api.do(nethttp.MethodPost, path, map[string]interface{}{"liked": true})
			w = api.do(nethttp.MethodPost, path, map[string]interface{}{"liked": true})
			Expect(w.Code).To(Equal(nethttp.StatusOK))
			Expect(decode(w)["likes"]).To(BeEquivalentTo(2))

			w = api.do(nethttp.MethodPost, path, map[string]interface{}{"liked": false})
			Expect(decode(w)["likes"]).To(BeEquivalentTo(1))
		})

		It("responde 404 para publicação inexistente", func() {
			w := api.do(nethttp.MethodPost, "/api/posts/999/like", map[string]interface{}{"liked": true})
			Expect(w.Code).To(Equal(nethttp.StatusNotFound))
		})
	})

	Describe("Imóveis", func() {
		BeforeEach(func() {
			api.createProperty("dono@x.com", "Barato", "Rio de Janeiro", 1000)
			api.createProperty("dono@x.com", "Caro", "Rio de Janeiro", 2000)
		})

		DescribeTable("filtra por preço máximo",
			func(maxPrice string, expected int) {
				w := api.do(nethttp.MethodGet, "/api/properties?maxPrice="+maxPrice, nil)
				Expect(w.Code).To(Equal(nethttp.StatusOK))
				Expect(decodeList(w)).To(HaveLen(expected))
			},
			Entry("abaixo de todos", "500", 0),
			Entry("entre os dois", "1500", 1),
			Entry("acima de todos", "5000", 2),
		)

		It("filtra cidade por trecho sem diferenciar maiúsculas", func() {
			w := api.do(nethttp.MethodGet, "/api/properties?city=rio", nil)
			Expect(w.Code).To(Equal(nethttp.StatusOK))
			Expect(decodeList(w)).To(HaveLen(2))

			w = api.do(nethttp.MethodGet, "/api/properties?city=Paulo", nil)
			Expect(decodeList(w)).To(BeEmpty())
		})

		It("rejeita maxPrice não numérico", func() {
			w := api.do(nethttp.MethodGet, "/api/properties?maxPrice=barato", nil)
			Expect(w.Code).To(Equal(nethttp.StatusBadRequest))
			Expect(decode(w)["error"]).NotTo(BeEmpty())
		})

		It("limita as fotos a cinco", func() {
			id := api.createProperty("dono@x.com", "Fotos", "Niterói", 900)
			photos := []string{"1", "2", "3", "4", "5", "6", "7"}

			w := api.do(nethttp.MethodPut, fmt.Sprintf("/api/properties/%d/photos", id),
				map[string]interface{}{"photos": photos})
			Expect(w.Code).To(Equal(nethttp.StatusOK))
			Expect(decode(w)["photos"]).To(HaveLen(5))
		})

		It("conta visualizações no painel do proprietário", func() {
			id := api.createProperty("dono@x.com", "Visto", "Niterói", 900)
			w := api.do(nethttp.MethodPost, fmt.Sprintf("/api/properties/%d/views", id), nil)
			Expect(w.Code).To(Equal(nethttp.StatusCreated))

			w = api.do(nethttp.MethodGet, "/api/owner/dashboard?owner_email=dono@x.com", nil)
			Expect(w.Code).To(Equal(nethttp.StatusOK))
			body := decode(w)
			Expect(body["total_properties"]).To(BeEquivalentTo(3))
			Expect(body["total_views"]).To(BeEquivalentTo(1))
		})

		It("responde 404 para imóvel inexistente", func() {
			w := api.do(nethttp.MethodGet, "/api/properties/999", nil)
			Expect(w.Code).To(Equal(nethttp.StatusNotFound))
			Expect(decode(w)["error"]).NotTo(BeEmpty())
		})
	})

	Describe("Favoritos", func() {
		It("rejeita favorito duplicado e remove de forma idempotente", func() {
			id := api.createProperty("dono@x.com", "Casa", "Rio de Janeiro", 1000)
			fav := map[string]interface{}{"user_email": "ana@x.com", "property_id": id}

			Expect(api.do(nethttp.MethodPost, "/api/favorites", fav).Code).To(Equal(nethttp.StatusCreated))

			w := api.do(nethttp.MethodPost, "/api/favorites", fav)
			Expect(w.Code).To(Equal(nethttp.StatusBadRequest))
			Expect(decode(w)["error"]).To(Equal("Already favorited"))

			w = api.do(nethttp.MethodGet, "/api/favorites?user_email=ana@x.com", nil)
			Expect(decodeList(w)).To(HaveLen(1))

			path := fmt.Sprintf("/api/favorites/%d?user_email=ana@x.com", id)
			Expect(api.do(nethttp.MethodDelete, path, nil).Code).To(Equal(nethttp.StatusOK))
			Expect(api.do(nethttp.MethodDelete, path, nil).Code).To(Equal(nethttp.StatusOK))

			w = api.do(nethttp.MethodGet, "/api/favorites?user_email=ana@x.com", nil)
			Expect(decodeList(w)).To(BeEmpty())
		})
	})

	Describe("Leads", func() {
		It("impede lead duplicado e notifica o proprietário", func() {
			id := api.createProperty("dono@x.com", "Casa Azul", "Rio de Janeiro", 1000)
			lead := map[string]interface{}{"property_id": id, "user_email": "ana@x.com", "user_name": "Ana"}

			w := api.do(nethttp.MethodPost, "/api/leads", lead)
			Expect(w.Code).To(Equal(nethttp.StatusCreated))
			Expect(decode(w)["status"]).To(Equal("Novo"))

			Expect(api.do(nethttp.MethodPost, "/api/leads", lead).Code).To(Equal(nethttp.StatusBadRequest))

			w = api.do(nethttp.MethodGet, "/api/notifications?user_email=dono@x.com", nil)
			notifications := decodeList(w)
			Expect(notifications).To(HaveLen(1))
			Expect(notifications[0]["type"]).To(Equal("new_lead"))
			Expect(notifications[0]["message"]).To(ContainSubstring("Casa Azul"))
			Expect(notifications[0]["read"]).To(BeFalse())

			w = api.do(nethttp.MethodPut, fmt.Sprintf("/api/notifications/%v/read", notifications[0]["id"]), nil)
			Expect(w.Code).To(Equal(nethttp.StatusOK))
			Expect(decode(w)["read"]).To(BeTrue())
		})

		It("aceita qualquer status e responde 404 para lead inexistente", func() {
			id := api.createProperty("dono@x.com", "Casa", "Rio de Janeiro", 1000)
			w := api.do(nethttp.MethodPost, "/api/leads",
				map[string]interface{}{"property_id": id, "user_email": "ana@x.com", "user_name": "Ana"})
			leadID := decode(w)["id"]

			w = api.do(nethttp.MethodPut, fmt.Sprintf("/api/owner/leads/%v", leadID),
				map[string]interface{}{"status": "Qualquer Coisa"})
			Expect(w.Code).To(Equal(nethttp.StatusOK))
			Expect(decode(w)["status"]).To(Equal("Qualquer Coisa"))

			w = api.do(nethttp.MethodPut, "/api/owner/leads/999", map[string]interface{}{"status": "Fechado"})
			Expect(w.Code).To(Equal(nethttp.StatusNotFound))

			w = api.do(nethttp.MethodGet, "/api/owner/leads?owner_email=dono@x.com", nil)
			leads := decodeList(w)
			Expect(leads).To(HaveLen(1))
			Expect(leads[0]["property_title"]).To(Equal("Casa"))
		})

		It("responde 404 ao marcar notificação inexistente", func() {
			w := api.do(nethttp.MethodPut, "/api/notifications/999/read", nil)
			Expect(w.Code).To(Equal(nethttp.StatusNotFound))
		})
	})

	Describe("Chat", func() {
		createChat := func(a, b string) *httptest.ResponseRecorder {
			return api.do(nethttp.MethodPost, "/api/chats", map[string]interface{}{"user1_email": a, "user2_email": b})
		}

		It("reutiliza a conversa independente da ordem dos participantes", func() {
			w := createChat("a@x.com", "b@x.com")
			Expect(w.Code).To(Equal(nethttp.StatusCreated))
			first := decode(w)

			w = createChat("b@x.com", "a@x.com")
			Expect(w.Code).To(Equal(nethttp.StatusOK))
			Expect(decode(w)["id"]).To(Equal(first["id"]))
		})

		It("ordena conversas pela última mensagem e mensagens da mais antiga", func() {
			older := decode(createChat("a@x.com", "b@x.com"))
			newer := decode(createChat("a@x.com", "c@x.com"))
			otherOfB := decode(createChat("b@x.com", "d@x.com"))

			before := time.Now()
			for _, content := range []string{"primeira", "segunda"} {
				w := api.do(nethttp.MethodPost, "/api/messages", map[string]interface{}{
					"chat_id": older["id"], "sender_email": "a@x.com", "content": content,
				})
				Expect(w.Code).To(Equal(nethttp.StatusCreated))
				Expect(decode(w)["message_type"]).To(Equal("text"))
			}

			w := api.do(nethttp.MethodGet, "/api/chats?user_email=a@x.com", nil)
			chats := decodeList(w)
			Expect(chats).To(HaveLen(2))
			Expect(chats[0]["id"]).To(Equal(older["id"]))
			Expect(chats[0]["other_user_email"]).To(Equal("b@x.com"))
			Expect(chats[0]["last_message"]).To(Equal("segunda"))
			Expect(chats[1]["id"]).To(Equal(newer["id"]))

			lastMessageAt, err := time.Parse(time.RFC3339Nano, chats[0]["last_message_at"].(string))
			Expect(err).NotTo(HaveOccurred())
			Expect(lastMessageAt).To(BeTemporally(">=", before))

			w = api.do(nethttp.MethodGet, "/api/chats?user_email=b@x.com", nil)
			chatsOfB := decodeList(w)
			Expect(chatsOfB).To(HaveLen(2))
			Expect(chatsOfB[0]["id"]).To(Equal(older["id"]))
			Expect(chatsOfB[0]["other_user_email"]).To(Equal("a@x.com"))
			Expect(chatsOfB[1]["id"]).To(Equal(otherOfB["id"]))

			w = api.do(nethttp.MethodGet, fmt.Sprintf("/api/chats/%v/messages", older["id"]), nil)
			messages := decodeList(w)
			Expect(messages).To(HaveLen(2))
			Expect(messages[0]["content"]).To(Equal("primeira"))
		})

		It("responde 404 ao enviar para conversa inexistente", func() {
			w := api.do(nethttp.MethodPost, "/api/messages", map[string]interface{}{
				"chat_id": 999, "sender_email": "a@x.com", "content": "oi",
			})
			Expect(w.Code).To(Equal(nethttp.StatusNotFound))
		})

		It("entrega mensagens enviadas aos assinantes via websocket", func() {
			chat := decode(createChat("a@x.com", "b@x.com"))
			chatID := int64(chat["id"].(float64))

			server := httptest.NewServer(api.router)
			DeferCleanup(server.Close)

			wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + fmt.Sprintf("/api/chats/%d/ws", chatID)
			conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(conn.Close)

			Eventually(func() int { return api.hub.Subscribers(chatID) }).Should(Equal(1))

			w := api.do(nethttp.MethodPost, "/api/messages", map[string]interface{}{
				"chat_id": chatID, "sender_email": "b@x.com", "content": "ao vivo",
			})
			Expect(w.Code).To(Equal(nethttp.StatusCreated))

			Expect(conn.SetReadDeadline(time.Now().Add(2 * time.Second))).To(Succeed())
			var received dto.MessageResponse
			Expect(conn.ReadJSON(&received)).To(Succeed())
			Expect(received.Content).To(Equal("ao vivo"))
			Expect(received.SenderEmail).To(Equal("b@x.com"))
		})
	})

	Describe("Transversal", func() {
		It("responde preflight com 200 e origem liberada", func() {
			w := api.do(nethttp.MethodOptions, "/api/properties", nil, "Origin", "http://app.example")
			Expect(w.Code).To(Equal(nethttp.StatusOK))
			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		})

		It("traduz erros conforme Accept-Language", func() {
			w := api.do(nethttp.MethodGet, "/api/properties/999", nil, "Accept-Language", "pt-BR")
			Expect(w.Code).To(Equal(nethttp.StatusNotFound))
			Expect(w.Header().Get("Content-Language")).To(Equal("pt-BR"))
		})

		It("responde problema 404 para rota desconhecida", func() {
			w := api.do(nethttp.MethodGet, "/api/nao-existe", nil)
			Expect(w.Code).To(Equal(nethttp.StatusNotFound))
			Expect(decode(w)["error"]).NotTo(BeEmpty())
		})

		It("expõe o health check", func() {
			w := api.do(nethttp.MethodGet, "/health", nil)
			Expect(w.Code).To(Equal(nethttp.StatusOK))
			Expect(decode(w)["status"]).To(Equal("ok"))
		})
	})
})
