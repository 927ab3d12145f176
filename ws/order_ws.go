package ws

import (
	"log"
	"net/http"
	"sync"

	"foodcourt/entity"
	"foodcourt/repository"
	"foodcourt/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ScopeKind selects which slice of the order ledger a reader observes.
type ScopeKind string

const (
	ScopeCustomer   ScopeKind = "customer"   // the customer's own orders
	ScopeRestaurant ScopeKind = "restaurant" // the owning restaurant's queue
	ScopeAdmin      ScopeKind = "admin"      // the global ledger
)

// Scope identifies one (collection, filter) subscription.
type Scope struct {
	Kind ScopeKind
	ID   uint // zero for admin
}

// Subscription ties one websocket connection to one scope.
type Subscription struct {
	Conn  *websocket.Conn
	Scope Scope
}

// OrderHub pushes the full current order list of a scope to every
// subscribed connection whenever an order in that scope changes. Readers
// never mutate; connections are removed on close or write failure.
type OrderHub struct {
	clients    map[Scope]map[*websocket.Conn]bool
	register   chan Subscription
	unregister chan Subscription
	changed    chan Scope
	mu         sync.Mutex

	orders *repository.OrderRepository
	rests  *repository.RestaurantRepository
}

func NewOrderHub(orders *repository.OrderRepository, rests *repository.RestaurantRepository) *OrderHub {
	return &OrderHub{
		clients:    make(map[Scope]map[*websocket.Conn]bool),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		changed:    make(chan Scope, 16),
		orders:     orders,
		rests:      rests,
	}
}

// OrderChanged implements services.OrderNotifier: an order belonging to
// this customer and restaurant was created or advanced.
func (h *OrderHub) OrderChanged(customerID, restaurantID uint) {
	h.changed <- Scope{Kind: ScopeCustomer, ID: customerID}
	h.changed <- Scope{Kind: ScopeRestaurant, ID: restaurantID}
	h.changed <- Scope{Kind: ScopeAdmin}
}

// Run listens for register/unregister/changed events.
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.Scope] == nil {
				h.clients[sub.Scope] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Scope][sub.Conn] = true
			h.mu.Unlock()

			// initial snapshot so the view renders without waiting for a change
			h.push(sub.Scope, sub.Conn)

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.Scope][sub.Conn]; ok {
				delete(h.clients[sub.Scope], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case scope := <-h.changed:
			h.broadcast(scope)
		}
	}
}

type snapshot struct {
	Scope  string         `json:"scope"`
	Orders []entity.Order `json:"orders"`
}

func (h *OrderHub) load(scope Scope) ([]entity.Order, error) {
	switch scope.Kind {
	case ScopeCustomer:
		return h.orders.ListOrdersForUser(scope.ID, 0)
	case ScopeRestaurant:
		items, _, err := h.orders.ListOrdersForRestaurant(scope.ID, nil, 1, 200)
		return items, err
	default:
		return h.orders.ListAllOrders(0)
	}
}

func (h *OrderHub) push(scope Scope, conn *websocket.Conn) {
	orders, err := h.load(scope)
	if err != nil {
		log.Printf("ws snapshot load error: %v", err)
		return
	}
	if err := conn.WriteJSON(snapshot{Scope: string(scope.Kind), Orders: orders}); err != nil {
		log.Printf("ws write error: %v", err)
		h.mu.Lock()
		delete(h.clients[scope], conn)
		h.mu.Unlock()
		conn.Close()
	}
}

func (h *OrderHub) broadcast(scope Scope) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients[scope]))
	for conn := range h.clients[scope] {
		conns = append(conns, conn)
	}
	h.mu.Unlock()
	if len(conns) == 0 {
		return
	}

	orders, err := h.load(scope)
	if err != nil {
		log.Printf("ws snapshot load error: %v", err)
		return
	}
	msg := snapshot{Scope: string(scope.Kind), Orders: orders}

	for _, conn := range conns {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("ws write error: %v", err)
			h.mu.Lock()
			delete(h.clients[scope], conn)
			h.mu.Unlock()
			conn.Close()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket is the WS route: /ws/orders. The reader scope follows
// the authenticated role: customers see their own orders, owners their
// restaurant's queue, admins everything.
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	var scope Scope
	switch role {
	case entity.RoleCustomer:
		scope = Scope{Kind: ScopeCustomer, ID: userID}
	case entity.RoleRestaurant:
		rest, err := h.rests.FindByOwner(userID)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "no restaurant for this account"})
			return
		}
		scope = Scope{Kind: ScopeRestaurant, ID: rest.ID}
	case entity.RoleAdmin:
		scope = Scope{Kind: ScopeAdmin}
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, Scope: scope}
	h.register <- sub

	// Reads are only used to detect the peer going away; the feed is
	// one-directional.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unregister <- sub
				return
			}
		}
	}()
}
