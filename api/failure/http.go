// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package failure

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/protocol/ec2query"
	"github.com/aws/aws-sdk-go-v2/aws/protocol/restjson"
	awsxml "github.com/aws/aws-sdk-go-v2/aws/protocol/xml"
)

// _maxErrorBodyBytes bounds how much of an error response is buffered to
// look for an error code.
const _maxErrorBodyBytes = 64 * 1024

// _errorTypeHeader is set by JSON protocols to the error code.
const _errorTypeHeader = "X-Amzn-Errortype"

// FromHTTPResponse builds a Failure from a failed HTTP response.
//
// It only looks for an error code: the X-Amzn-ErrorType header, the "code"
// or "__type" field of a JSON body, or the <Code> element of an XML error
// body. If a code is found the Failure is a ServiceError carrying the
// response's transport; otherwise it is a bare Transport. A body that cannot
// be read or parsed is not an error, it simply yields no code.
//
// The consumed part of the body is put back so resp.Body may be read again.
func FromHTTPResponse(resp *http.Response) Failure {
	if resp == nil {
		return Failure{}
	}

	body := peekBody(resp)
	t := Transport{
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		BodyPresent: len(body) > 0,
	}

	code, message := errorCode(resp.Header, body)
	if code == "" {
		return FromTransport(t)
	}
	return FromServiceError(ServiceError{Code: code, Message: message}, &t)
}

func peekBody(resp *http.Response) []byte {
	if resp.Body == nil || resp.Body == http.NoBody {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, _maxErrorBodyBytes))
	resp.Body = &replayBody{
		Reader: io.MultiReader(bytes.NewReader(body), resp.Body),
		closer: resp.Body,
	}
	return body
}

type replayBody struct {
	io.Reader

	closer io.Closer
}

func (r *replayBody) Close() error {
	return r.closer.Close()
}

func errorCode(header http.Header, body []byte) (code, message string) {
	if headerCode := header.Get(_errorTypeHeader); headerCode != "" {
		code = restjson.SanitizeErrorCode(headerCode)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return code, ""
	}

	if isXML(header, trimmed) {
		c, m := xmlErrorCode(trimmed)
		if code == "" {
			code = c
		}
		return code, m
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()
	jsonCode, jsonMessage, err := restjson.GetErrorInfo(decoder)
	if err != nil {
		return code, ""
	}
	if code == "" && jsonCode != "" {
		code = restjson.SanitizeErrorCode(jsonCode)
	}
	return code, jsonMessage
}

func isXML(header http.Header, body []byte) bool {
	if strings.Contains(strings.ToLower(header.Get("Content-Type")), "xml") {
		return true
	}
	return body[0] == '<'
}

// xmlErrorCode handles wrapped (<ErrorResponse><Error>...), bare
// (<Error>...) and EC2 (<Response><Errors><Error>...) error documents.
func xmlErrorCode(body []byte) (code, message string) {
	for _, noErrorWrapping := range []bool{false, true} {
		components, err := awsxml.GetErrorResponseComponents(bytes.NewReader(body), noErrorWrapping)
		if err == nil && components.Code != "" {
			return components.Code, components.Message
		}
	}
	components, err := ec2query.GetErrorResponseComponents(bytes.NewReader(body))
	if err == nil && components.Code != "" {
		return components.Code, components.Message
	}
	return "", ""
}
