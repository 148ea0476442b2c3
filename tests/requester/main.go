package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

type product struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Tax   string `json:"tax"`
	Stock int    `json:"stock"`
}

type payment struct {
	Kind     string `json:"kind"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type order struct {
	Status   string    `json:"status"`
	Products []product `json:"products"`
	Payments []payment `json:"payments"`
}

var statuses = []string{"pending", "paid", "processed", "shipped", "delivered", "cancelled"}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomProduct() product {
	return product{
		Name:  fmt.Sprintf("Item %d", rand.Intn(1000)),
		Price: fmt.Sprintf("%d.%02d", rand.Intn(1000), rand.Intn(100)),
		Tax:   "1.16",
		Stock: rand.Intn(20),
	}
}

func randomOrder() order {
	o := order{Status: statuses[rand.Intn(len(statuses)-1)]}
	for range rand.Intn(5) + 1 {
		o.Products = append(o.Products, randomProduct())
	}
	o.Payments = []payment{{Kind: "cash", Amount: fmt.Sprintf("%d", rand.Intn(5000)), Currency: "USD"}}
	return o
}

func doRequest() {
	var path string
	var body any

	switch rand.Intn(3) {
	case 0:
		path, body = "/orders/total", randomOrder()
	case 1:
		// иногда отправляем несуществующий статус
		path, body = "/orders/status", map[string]any{
			"order":  randomOrder(),
			"status": statuses[rand.Intn(len(statuses))],
		}
	default:
		path, body = "/products/reduce-stock", map[string]any{
			"product":  randomProduct(),
			"quantity": rand.Intn(25) - 2,
		}
	}

	data, _ := json.Marshal(body)
	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("POST", path, "->", resp.Status)
		resp.Body.Close()
	}
}
