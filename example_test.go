package rawreq

import (
	"context"
	"fmt"
	"io"
)

func ExampleClient() {
	req, err := FromURL("https://www.example.com/search?q=raw")
	if err != nil {
		fmt.Println(err)
		return
	}
	cl := &Client{}
	resp, err := cl.CtxDo(context.Background(), req)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	fmt.Println(err)
	fmt.Println(string(b))
}

func ExampleRequest_SetBodyField() {
	req := New()
	req.Headers.Set("Host", "api.example.com")
	req.Headers.Set("Content-Type", "application/json")
	req.Method = "POST"
	req.Body = `{"user":"alice"}`
	if err := req.SetBodyField("role", "admin"); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(req.Body)
	// Output: {"user":"alice","role":"admin"}
}
